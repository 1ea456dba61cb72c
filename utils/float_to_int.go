// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
)

// pcm16Scale maps the normalized range [-1, 1) onto the int16 range.
const pcm16Scale = 32768.0

// Float32ToPCM16 converts a normalized sample to PCM16 by truncating toward
// zero after scaling by 32768. Out-of-range input saturates: 1.0 and above
// yield 32767, -1.0 and below yield -32768. NaN yields 0.
func Float32ToPCM16(x float32) int16 {
	v := float64(x) * pcm16Scale
	switch {
	case v != v:
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

// Float32ToPCM16Rounded is like Float32ToPCM16 but rounds to the nearest
// integer, halves away from zero.
func Float32ToPCM16Rounded(x float32) int16 {
	v := math.Round(float64(x) * pcm16Scale)
	switch {
	case v != v:
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

// PCM16ToFloat32 maps a PCM16 value back into [-1, 1).
func PCM16ToFloat32(v int16) float32 {
	return float32(v) / pcm16Scale
}

// EncodePCM16LE converts src into little-endian PCM16 bytes in dst.
// dst must be exactly twice as long as src.
func EncodePCM16LE(dst []byte, src []float32, mode Rounding) {
	if len(dst) != 2*len(src) {
		panic("utils: EncodePCM16LE dst must be 2*len(src) bytes")
	}

	if mode == RoundNearest {
		for i, s := range src {
			binary.LittleEndian.PutUint16(dst[2*i:], uint16(Float32ToPCM16Rounded(s)))
		}
		return
	}

	for i, s := range src {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(Float32ToPCM16(s)))
	}
}

// DecodePCM16LE fills dst with normalized samples read from little-endian
// PCM16 bytes and returns how many samples were written. A trailing odd
// byte is ignored.
func DecodePCM16LE(dst []float32, src []byte) int {
	n := min(len(dst), len(src)/2)
	for i := range n {
		dst[i] = PCM16ToFloat32(int16(binary.LittleEndian.Uint16(src[2*i:])))
	}

	return n
}
