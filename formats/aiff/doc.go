// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into capture sources using
// github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 or 32 bits is normalized to float32 by the
// full-scale magnitude of its bit depth, so 16-bit files map to v/32768
// exactly as the WAV decoder does. Inputs that are not seekable are read
// into memory first.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // 12-bit or other uncommon sample size
//	}
package aiff
