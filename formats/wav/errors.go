// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrOddFrameLength        = errors.New("PCM16 frame has an odd number of bytes")
	ErrWriterClosed          = errors.New("WAV writer is closed")
)
