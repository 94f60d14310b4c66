// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison and sanitization kernels.
//
// Purpose:
//   - Compare matrices by logical content, independent of the layout tag.
//   - Clamp values into a range.
//
// Determinism:
//   - Fixed logical i→j order; flat walks when layouts agree.

package matrix

import "math"

const (
	opAllClose = "AllClose"
	opClip     = "Clip"
)

// Equal reports whether a and b have the same shape and identical elements
// at every logical position. Layout tags are ignored, so a Col matrix equals
// its ChangeLayout() twin. NaN never equals anything; nil inputs are unequal.
//
// Complexity: O(r*c), Space O(1) for *Dense operands.
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}
	if da.layout == db.layout {
		for k := range da.data {
			if da.data[k] != db.data[k] {
				return false
			}
		}
		return true
	}
	var i, j int
	for i = 0; i < da.r; i++ {
		for j = 0; j < da.c; j++ {
			if da.at(i, j) != db.at(i, j) {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var i, j int
	for i = 0; i < da.r; i++ {
		for j = 0; j < da.c; j++ {
			if !closeTo(da.at(i, j), db.at(i, j), rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeTo is the scalar relation behind AllClose.
func closeTo(x, y, rtol, atol float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

// EqualApprox is AllClose with rtol=0 and atol=eps from options
// (DefaultEpsilon unless WithEpsilon is given). Mismatched shapes are unequal.
func EqualApprox(a, b Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	ok, err := AllClose(a, b, 0, o.eps)

	return err == nil && ok
}

// Clip returns a copy of m with elements clamped into [lo, hi].
// If lo > hi the bounds are swapped. NaN bounds are rejected.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (NaN bound).
//
// Complexity: O(r*c).
func Clip(m Matrix, lo, hi float64) (Matrix, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opClip, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opClip, err)
	}

	out := dm.clone()
	for k, v := range out.data {
		out.data[k] = math.Min(math.Max(v, lo), hi)
	}

	return out, nil
}
