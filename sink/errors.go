// SPDX-License-Identifier: EPL-2.0

package sink

import "errors"

// ErrWriteFrame wraps the error of the first frame the sink failed to write.
var ErrWriteFrame = errors.New("writing frame")
