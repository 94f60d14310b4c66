// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestAddSub_MixedLayouts ensures element-wise kernels use logical positions.
func TestAddSub_MixedLayouts(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustNew(t, []float64{10, 30, 20, 40}, 2, 2, matrix.Col) // [[10 20] [30 40]]

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 22}, {33, 44}}, rowsOf(t, sum))
	assert.Equal(t, matrix.Row, sum.(*matrix.Dense).Layout(), "result keeps the left layout")

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{9, 18}, {27, 36}}, rowsOf(t, diff))
	assert.Equal(t, matrix.Col, diff.(*matrix.Dense).Layout())
}

// TestAdd_FallbackMatchesFastPath compares *Dense and hidden operands.
func TestAdd_FallbackMatchesFastPath(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{6, 5, 4}, {3, 2, 1}})

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	assert.True(t, matrix.Equal(fast, slow))
}

// TestElementwise_Errors covers nil and shape mismatches.
func TestElementwise_Errors(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}})
	b := MustRows(t, [][]float64{{1}, {2}})

	_, err := matrix.Add(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Hadamard(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilDense *matrix.Dense
	_, err = matrix.Scale(nilDense, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestHadamardScale checks the remaining element-wise kernels.
func TestHadamardScale(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	h, err := matrix.Hadamard(a, a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {9, 16}}, rowsOf(t, h))

	s, err := matrix.Scale(a, -0.5)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-0.5, -1}, {-1.5, -2}}, rowsOf(t, s))
}

// TestMul_AgainstGonum cross-checks the product with gonum for both layouts.
func TestMul_AgainstGonum(t *testing.T) {
	a := MustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3, matrix.Col)
	b := MustNew(t, []float64{7, 8, 9, 10, 11, 12}, 3, 2, matrix.Row)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	ga, err := matrix.ToGonum(a)
	require.NoError(t, err)
	gb, err := matrix.ToGonum(b)
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(ga, gb)

	gg, err := matrix.ToGonum(got)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(gg, &want, 1e-12))

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMatVec checks y = A·x and the length guard.
func TestMatVec(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTranspose_ColumnToRow is the layout-swap acceptance check:
// a 4×1 Col matrix over {1,2,3,4} transposes to the 1×4 Row matrix.
func TestTranspose_ColumnToRow(t *testing.T) {
	a := MustNew(t, []float64{1, 2, 3, 4}, 4, 1, matrix.Col)
	b := MustNew(t, []float64{1, 2, 3, 4}, 1, 4, matrix.Row)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(at, b))

	d := at.(*matrix.Dense)
	assert.Equal(t, b.Layout(), d.Layout())
	assert.Equal(t, b.Data(), d.Data())
}

// TestTranspose_Generic exercises the non-Dense fallback against gonum.
func TestTranspose_Generic(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(hide{a})
	require.NoError(t, err)

	ga, _ := matrix.ToGonum(a)
	gt, _ := matrix.ToGonum(at)
	assert.True(t, mat.Equal(ga.T(), gt))

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestLUInverseDet validates the LU family against gonum.
func TestLUInverseDet(t *testing.T) {
	a := MustRows(t, [][]float64{{4, 3, 2}, {2, 1, 3}, {3, 2, 1}})

	L, U, err := matrix.LU(a)
	require.NoError(t, err)
	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	ok, err := matrix.AllClose(prod, a, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)

	det, err := matrix.Det(a)
	require.NoError(t, err)
	ga, _ := matrix.ToGonum(a)
	assert.InDelta(t, mat.Det(ga), det, 1e-9)

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	id, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	I, _ := matrix.NewIdentity(3)
	ok, err = matrix.AllClose(id, I, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestDetInverse_NeedsRowExchange covers invertible matrices whose leading
// pivot is zero; only a row exchange exposes their factors.
func TestDetInverse_NeedsRowExchange(t *testing.T) {
	cases := []struct {
		name string
		m    *matrix.Dense
		det  float64
	}{
		{"swap2", MustNew(t, []float64{0, 1, 1, 0}, 2, 2, matrix.Row), -1},
		{"cycle3", MustRows(t, [][]float64{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}}), 1},
		{"zeroLead", MustRows(t, [][]float64{{0, 2, 1}, {3, 1, 0}, {1, 0, 4}}), -25},
		{"colLayout", MustNew(t, []float64{0, 5, 2, 3}, 2, 2, matrix.Col), -10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gm, err := matrix.ToGonum(tc.m)
			require.NoError(t, err)
			want := mat.Det(gm)
			assert.InDelta(t, tc.det, want, 1e-9)

			det, err := matrix.Det(tc.m)
			require.NoError(t, err)
			assert.InDelta(t, want, det, 1e-9)

			inv, err := matrix.Inverse(tc.m)
			require.NoError(t, err)
			id, err := matrix.Mul(tc.m, inv)
			require.NoError(t, err)
			n := tc.m.Rows()
			I, _ := matrix.NewIdentity(n)
			ok, err := matrix.AllClose(id, I, 0, 1e-9)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}

	// The unpivoted factorization still reports the zero leading pivot.
	_, _, err := matrix.LU(MustNew(t, []float64{0, 1, 1, 0}, 2, 2, matrix.Row))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestLU_Errors covers singular and non-square inputs.
func TestLU_Errors(t *testing.T) {
	singular := MustRows(t, [][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Inverse(singular)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	det, err := matrix.Det(singular)
	require.NoError(t, err)
	assert.Equal(t, 0.0, det)

	rect := MustRows(t, [][]float64{{1, 2, 3}})
	_, _, err = matrix.LU(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestFacades covers the thin API aliases.
func TestFacades(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	rs, err := matrix.RowSums(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, rs)

	cs, err := matrix.ColSums(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, cs)

	sym, err := matrix.Symmetrize(a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2.5}, {2.5, 4}}, rowsOf(t, sym))

	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, z.Data())
}
