// SPDX-License-Identifier: MIT
// Package dist: sentinel errors.

package dist

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a parameter outside the family's domain
// (including NaN and ±Inf).
var ErrInvalidParameter = errors.New("dist: invalid parameter")

// paramErrorf wraps ErrInvalidParameter with the constructor and parameter.
func paramErrorf(ctor, param string, v float64) error {
	return fmt.Errorf("%s: %s=%g: %w", ctor, param, v, ErrInvalidParameter)
}
