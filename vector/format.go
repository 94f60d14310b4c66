// SPDX-License-Identifier: MIT
// Package vector: comparison and rendering.

package vector

import (
	"math"
	"strconv"
	"strings"
)

// Equal reports exact element-wise equality. Slices of different length are
// never equal; NaN is never equal to anything.
func Equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// AllClose reports |a[i]-b[i]| ≤ atol + rtol·|b[i]| for every i.
// Matching infinities compare equal; NaN compares unequal.
func AllClose(a, b []float64, rtol, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			return false
		}
		if x == y {
			continue
		}
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			return false
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false
		}
	}

	return true
}

// Format renders a as "[1, 2.5, 3]" using the shortest exact representation.
func Format(a []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}
