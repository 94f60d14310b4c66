// SPDX-License-Identifier: MIT
// Package matrix: column-wise statistics.
//
// Purpose:
//   - Treat each column as a variable and each row as an observation.
//   - Sample statistics use the n-1 denominator (gonum stat convention).
//
// Determinism:
//   - Columns are visited in ascending order; per-column reductions are
//     delegated to gonum stat over a freshly copied column.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	opColMeans      = "ColMeans"
	opColVars       = "ColVars"
	opColSDs        = "ColSDs"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// columns validates X and returns it as *Dense with the per-column slices.
func columns(X Matrix) (*Dense, [][]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, err
	}
	d, err := asDense(X)
	if err != nil {
		return nil, nil, err
	}
	cols := make([][]float64, d.c)
	for j := 0; j < d.c; j++ {
		cols[j], _ = d.Col(j) // j is in range by construction
	}

	return d, cols, nil
}

// ColMeans returns the arithmetic mean of every column.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(r*c).
func ColMeans(X Matrix) ([]float64, error) {
	_, cols, err := columns(X)
	if err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}
	out := make([]float64, len(cols))
	for j, col := range cols {
		out[j] = stat.Mean(col, nil)
	}

	return out, nil
}

// ColVars returns the unbiased sample variance of every column.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewRows (r < 2).
//
// Complexity: O(r*c).
func ColVars(X Matrix) ([]float64, error) {
	d, cols, err := columns(X)
	if err != nil {
		return nil, matrixErrorf(opColVars, err)
	}
	if d.r < 2 {
		return nil, matrixErrorf(opColVars, ErrTooFewRows)
	}
	out := make([]float64, len(cols))
	for j, col := range cols {
		_, out[j] = stat.MeanVariance(col, nil)
	}

	return out, nil
}

// ColSDs returns the sample standard deviation of every column.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewRows (r < 2).
func ColSDs(X Matrix) ([]float64, error) {
	vars, err := ColVars(X)
	if err != nil {
		return nil, matrixErrorf(opColSDs, err)
	}
	for j, v := range vars {
		vars[j] = math.Sqrt(v)
	}

	return vars, nil
}

// CenterColumns returns Xc = X − mean(X, by columns) and the column means.
// The result keeps X's layout.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	means, err := ColMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	d, _ := asDense(X) // validated by ColMeans
	Xc := d.clone()
	Xc.validateNaNInf = false
	_ = Xc.Apply(func(_, j int, v float64) float64 { return v - means[j] })
	Xc.validateNaNInf = d.validateNaNInf

	return Xc, means, nil
}

// Covariance computes the sample covariance of columns: Cov = (Xcᵀ Xc)/(r-1).
// Returns Cov (c×c, Row layout) and the column means.
//
// Implementation:
//   - Stage 1: CenterColumns.
//   - Stage 2: Transpose → Mul → Scale through the canonical kernels.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewRows (r < 2).
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
func Covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrTooFewRows)
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xc.T(), Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}
