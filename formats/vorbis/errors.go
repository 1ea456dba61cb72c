// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbisFile indicates the input has no valid Ogg Vorbis headers.
	ErrNotVorbisFile = errors.New("not an Ogg Vorbis stream")

	// ErrUnsupportedVorbisLayout indicates zero channels or sample rate.
	ErrUnsupportedVorbisLayout = errors.New("unsupported Ogg Vorbis layout")
)
