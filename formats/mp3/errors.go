// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File indicates go-mp3 could not find a decodable MPEG frame.
var ErrNotMP3File = errors.New("not an MP3 stream")
