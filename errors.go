// SPDX-License-Identifier: EPL-2.0

package audcap

import "errors"

var (
	// ErrInvalidTick is returned by Replay when tick is not positive.
	ErrInvalidTick = errors.New("tick must be positive")

	// ErrReadSource wraps errors returned by the replayed source.
	ErrReadSource = errors.New("reading source")
)
