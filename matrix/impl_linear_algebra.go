// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition/subtraction, Hadamard product, matrix product,
// matrix-vector product, transpose, scaling and the LU family (LU, Det,
// Inverse). All functions perform strict fail-fast validation and return
// sentinel errors wrapped with an operation tag.
//
// Layout policy:
//   - Results of element-wise kernels keep the layout of the left operand.
//   - Mul/MatVec/LU/Inverse results use Row layout.
//   - When both operands share a layout, element-wise kernels walk the flat
//     buffers directly; otherwise they go through logical (i,j) reads.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitutions and dot products.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opScale        = "Scale"
	opHadamard     = "Hadamard"
	opMatVec       = "MatVec"
	opLU           = "LU"
	opDet          = "Det"
	opInverse      = "Inverse"
	opChangeLayout = "ChangeLayout"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense; otherwise it materializes a
// Row-layout copy through At. Callers validate m non-nil first.
//
// AI-Hints:
//   - Kernels call this once at entry so the hot loops only see *Dense.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}
	out.validateNaNInf = DefaultValidateNaNInf

	return out, nil
}

// zipDense computes out[i,j] = f(a[i,j], b[i,j]) into a fresh Dense shaped
// and laid out like a. Shapes must already be validated.
func zipDense(a, b *Dense, f func(x, y float64) float64) *Dense {
	out := &Dense{
		r:              a.r,
		c:              a.c,
		data:           make([]float64, len(a.data)),
		layout:         a.layout,
		validateNaNInf: a.validateNaNInf,
	}
	// Same layout: one flat walk.
	if a.layout == b.layout {
		for k := range a.data {
			out.data[k] = f(a.data[k], b.data[k])
		}
		return out
	}
	// Mixed layouts: logical i→j order.
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			out.data[out.offset(i, j)] = f(a.at(i, j), b.at(i, j))
		}
	}

	return out
}

// binaryEW validates and dispatches a same-shape element-wise kernel.
func binaryEW(a, b Matrix, op string, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	return zipDense(da, db, f), nil
}

// Add returns a + b (element-wise). Operands are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	out, err := binaryEW(a, b, opAdd, func(x, y float64) float64 { return x + y })
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Sub returns a − b (element-wise).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (Matrix, error) {
	out, err := binaryEW(a, b, opSub, func(x, y float64) float64 { return x - y })
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Hadamard returns the element-wise product a ⊙ b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Hadamard(a, b Matrix) (Matrix, error) {
	out, err := binaryEW(a, b, opHadamard, func(x, y float64) float64 { return x * y })
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Scale returns alpha*m. alpha = 0 yields an explicit zero matrix.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := dm.clone()
	for k := range out.data {
		out.data[k] *= alpha
	}

	return out, nil
}

// Mul computes the matrix product a × b (Row layout result).
// Loop order is i→k→j so the inner loop streams a row of the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := da.r, da.c, db.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, k, j, base int
	var aik float64
	for i = 0; i < rows; i++ {
		base = i * cols
		for k = 0; k < inner; k++ {
			aik = da.at(i, k)
			for j = 0; j < cols; j++ {
				res.data[base+j] += aik * db.at(k, j)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, dm.r)
	var i, j int
	var sum float64
	for i = 0; i < dm.r; i++ {
		sum = ZeroSum
		for j = 0; j < dm.c; j++ {
			sum += dm.at(i, j) * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Transpose returns mᵀ.
// For *Dense the buffer is copied verbatim with dims swapped and the layout
// tag flipped (see Dense.T). Other implementations are materialized into a
// Row-layout Dense via At/Set.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if dm, ok := m.(*Dense); ok {
		return dm.T(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// ChangeLayout returns m stored in the other layout (Row ⇄ Col) without
// changing its logical contents. Non-Dense inputs are treated as Row.
//
// Errors:
//   - ErrNilMatrix.
func ChangeLayout(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opChangeLayout, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opChangeLayout, err)
	}

	return dm.ChangeLayout(), nil
}

// LU computes the Doolittle factorization m = L·U without pivoting.
// L is unit lower triangular, U is upper triangular; both use Row layout.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (zero pivot).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - No pivoting, so a zero leading pivot reports ErrSingular even for
//     invertible matrices that need row exchanges (e.g. [[0 1] [1 0]]).
//     Det and Inverse pivot and do not share this limitation.
func LU(m Matrix) (Matrix, Matrix, error) {
	l, u, err := lu(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return l, u, nil
}

// lu is the unpivoted Doolittle kernel behind LU.
func lu(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, err
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, nil, err
	}

	n := dm.r
	L, _ := NewDense(n, n)
	U, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = dm.at(i, j) - sum
		}

		pivot = U.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, nil, ErrSingular
		}

		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (dm.at(j, i) - sum) / pivot
		}
	}

	return L, U, nil
}

// plu is the partially pivoted Doolittle kernel behind Det and Inverse.
// It returns the packed factors (unit L strictly below the diagonal, U on and
// above it, Row layout), the row permutation perm (row i of P·m is row
// perm[i] of m) and the permutation sign.
// ErrSingular means a whole pivot column is exactly zero, so m is singular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func plu(m Matrix) (*Dense, []int, float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, 0, err
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, nil, 0, err
	}

	n := dm.r
	a := dm.toLayout(Row)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var i, j, k, p int
	var best, v, factor float64
	for k = 0; k < n; k++ {
		// Largest |a[i][k]| for i >= k becomes the pivot.
		p, best = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return nil, nil, 0, ErrSingular
		}
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		for i = k + 1; i < n; i++ {
			factor = a.data[i*n+k] / a.data[k*n+k]
			a.data[i*n+k] = factor
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= factor * a.data[k*n+j]
			}
		}
	}

	return a, perm, sign, nil
}

// Det returns the determinant of a square matrix: the signed product of the
// pivots of a partially pivoted LU. A singular matrix yields 0 and no error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Det(m Matrix) (float64, error) {
	a, _, sign, err := plu(m)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return 0, nil
		}
		return 0, matrixErrorf(opDet, err)
	}

	n := a.r
	det := sign
	for i := 0; i < n; i++ {
		det *= a.data[i*n+i]
	}

	return det, nil
}

// Inverse returns m⁻¹ by solving P·m·x = P·e_col for every column with the
// pivoted factors. The result uses Row layout.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	a, perm, _, err := plu(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := a.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = P*e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += a.data[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += a.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / a.data[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
