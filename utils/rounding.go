// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRounding = errors.New("unknown rounding mode")

// Rounding selects how a scaled sample is quantized to an integer.
type Rounding int

const (
	// Truncate drops the fractional part (toward zero).
	Truncate Rounding = iota
	// RoundNearest rounds to the nearest integer, halves away from zero.
	RoundNearest
)

func (r Rounding) String() string {
	switch r {
	case Truncate:
		return "truncate"
	case RoundNearest:
		return "nearest"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// Convert quantizes x to PCM16 using r.
func (r Rounding) Convert(x float32) int16 {
	if r == RoundNearest {
		return Float32ToPCM16Rounded(x)
	}

	return Float32ToPCM16(x)
}

// ParseRounding accepts "truncate" or "nearest" (case-insensitive).
// An empty string selects Truncate.
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "truncate", "trunc":
		return Truncate, nil
	case "nearest", "round":
		return RoundNearest, nil
	}

	return Truncate, fmt.Errorf("%w: %q", ErrUnknownRounding, s)
}
