// SPDX-License-Identifier: MIT
// Package matrix: interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand a Dense to gonum routines (factorizations, solvers) and back.
//   - gonum's mat.Dense is row-major; Col-layout inputs are re-laid out once.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense with the same logical contents.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	return mat.NewDense(d.r, d.c, d.RowMajor()), nil
}

// FromGonum copies any gonum matrix into a Row-layout *Dense.
// Options apply as in New (the finite-only policy is on by default).
//
// Errors:
//   - ErrNilMatrix for a nil src, ErrInvalidDimensions for empty src,
//     ErrNaNInf for non-finite values under the policy.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, ErrInvalidDimensions)
	}

	data := make([]float64, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			data = append(data, src.At(i, j))
		}
	}
	out, err := New(data, r, c, Row, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return out, nil
}
