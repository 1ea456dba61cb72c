// SPDX-License-Identifier: EPL-2.0

package host

import "errors"

var (
	ErrEmptyName         = errors.New("processor name is empty")
	ErrAlreadyRegistered = errors.New("processor name already registered")
	ErrUnknownProcessor  = errors.New("processor name not registered")
	ErrNilFactory        = errors.New("processor factory is nil")
)
