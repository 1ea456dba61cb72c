// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into capture sources using
// github.com/jfreymuth/oggvorbis.
//
// Samples are decoded straight into the caller's buffer as interleaved
// float32. Vorbis output can overshoot [-1, 1] slightly; the capture stage
// saturates such values, so no clipping happens here. ReadSamples only
// fills whole frames, so a buffer shorter than one frame reads nothing.
package vorbis
