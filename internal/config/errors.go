// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrReadConfig wraps file access and YAML decoding failures.
	ErrReadConfig = errors.New("reading configuration")
)
