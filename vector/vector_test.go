// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvnum/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plus(x, y float64) float64 { return x + y }

// TestZipWith_MatchesAdd pins the zip/add equivalence on the canonical inputs.
func TestZipWith_MatchesAdd(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}

	z, err := vector.ZipWith(plus, a, b)
	require.NoError(t, err)
	s, err := vector.Add(a, b)
	require.NoError(t, err)

	want := []float64{6, 8, 10, 12}
	if diff := cmp.Diff(want, z); diff != "" {
		t.Fatalf("ZipWith mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, vector.Equal(z, s))

	// inputs untouched
	assert.Equal(t, []float64{1, 2, 3, 4}, a)
	assert.Equal(t, []float64{5, 6, 7, 8}, b)
}

// TestZipWith_Edges covers empty inputs, mismatched lengths and nil f.
func TestZipWith_Edges(t *testing.T) {
	z, err := vector.ZipWith(plus, []float64{}, []float64{})
	require.NoError(t, err)
	assert.NotNil(t, z)
	assert.Len(t, z, 0)

	_, err = vector.ZipWith(plus, []float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, vector.ErrLengthMismatch)

	_, err = vector.ZipWith(nil, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, vector.ErrNilFunc)
}

// TestElementwise checks Sub/Mul/Div/Scale and the IEEE division rule.
func TestElementwise(t *testing.T) {
	a := []float64{2, 4, 6}
	b := []float64{1, 2, 0}

	d, err := vector.Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 6}, d)

	m, err := vector.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 8, 0}, m)

	q, err := vector.Div(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2.0, q[0])
	assert.True(t, math.IsInf(q[2], 1))

	assert.Equal(t, []float64{-2, -4, -6}, vector.Scale(-1, a))

	for _, f := range []func(a, b []float64) ([]float64, error){vector.Add, vector.Sub, vector.Mul, vector.Div} {
		_, err := f(a, b[:2])
		assert.ErrorIs(t, err, vector.ErrLengthMismatch)
	}
}

// TestMapsAndReductions covers Fmap, Reduce, Sum, Dot and Norm.
func TestMapsAndReductions(t *testing.T) {
	a := []float64{3, -4}

	sq, err := vector.Fmap(func(v float64) float64 { return v * v }, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 16}, sq)

	prod, err := vector.Reduce(func(acc, v float64) float64 { return acc * v }, 1, a)
	require.NoError(t, err)
	assert.Equal(t, -12.0, prod)

	_, err = vector.Fmap(nil, a)
	assert.ErrorIs(t, err, vector.ErrNilFunc)
	_, err = vector.Reduce(nil, 0, a)
	assert.ErrorIs(t, err, vector.ErrNilFunc)

	assert.Equal(t, -1.0, vector.Sum(a))
	assert.Equal(t, 0.0, vector.Sum(nil))

	dot, err := vector.Dot(a, a)
	require.NoError(t, err)
	assert.Equal(t, 25.0, dot)
	_, err = vector.Dot(a, []float64{1})
	assert.ErrorIs(t, err, vector.ErrLengthMismatch)

	assert.InDelta(t, 5.0, vector.Norm(a, 2), 1e-12)
	assert.InDelta(t, 7.0, vector.Norm(a, 1), 1e-12)
	assert.InDelta(t, 4.0, vector.Norm(a, math.Inf(1)), 1e-12)
	assert.True(t, math.IsNaN(vector.Norm(a, 0.5)))
}

// TestCompare covers Equal and AllClose special values.
func TestCompare(t *testing.T) {
	assert.False(t, vector.Equal([]float64{1}, []float64{1, 2}))
	assert.False(t, vector.Equal([]float64{math.NaN()}, []float64{math.NaN()}))

	a := []float64{1, math.Inf(1)}
	b := []float64{1 + 1e-12, math.Inf(1)}
	assert.True(t, vector.AllClose(a, b, 0, 1e-9))
	assert.False(t, vector.AllClose(a, []float64{1, math.Inf(-1)}, 0, 1e-9))
	assert.False(t, vector.AllClose([]float64{math.NaN()}, []float64{math.NaN()}, 1, 1))
	assert.False(t, vector.AllClose(a, b[:1], 1, 1))
}

// TestFormat renders the shortest representation.
func TestFormat(t *testing.T) {
	assert.Equal(t, "[6, 8, 10, 12]", vector.Format([]float64{6, 8, 10, 12}))
	assert.Equal(t, "[0.1, -2.5]", vector.Format([]float64{0.1, -2.5}))
	assert.Equal(t, "[]", vector.Format(nil))
}

// TestGenerators covers Seq, Linspace, Zeros and Ones.
func TestGenerators(t *testing.T) {
	s, err := vector.Seq(1, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, s)

	s, err = vector.Seq(0, 1, 0.1)
	require.NoError(t, err)
	require.Len(t, s, 11)
	if diff := cmp.Diff(1.0, s[10], cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("Seq end (-want +got):\n%s", diff)
	}

	s, err = vector.Seq(5, 1, -2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3, 1}, s)

	s, err = vector.Seq(2, 2, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, s)

	for _, step := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = vector.Seq(0, 3, step)
		assert.ErrorIs(t, err, vector.ErrBadStep, "step=%v", step)
	}

	// Finite, correctly oriented bounds whose count cannot be allocated.
	_, err = vector.Seq(0, math.MaxFloat64, 1)
	assert.ErrorIs(t, err, vector.ErrBadCount)
	_, err = vector.Seq(-math.MaxFloat64, math.MaxFloat64, 1)
	assert.ErrorIs(t, err, vector.ErrBadCount)
	_, err = vector.Seq(0, float64(vector.MaxLen), 1)
	assert.ErrorIs(t, err, vector.ErrBadCount)

	l, err := vector.Linspace(0, 1, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, l, 1e-12)
	l, err = vector.Linspace(3, 9, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, l)
	_, err = vector.Linspace(0, 1, -1)
	assert.ErrorIs(t, err, vector.ErrBadCount)

	z, err := vector.Zeros(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, z)
	o, err := vector.Ones(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, o)
	_, err = vector.Ones(-1)
	assert.ErrorIs(t, err, vector.ErrBadCount)
}
