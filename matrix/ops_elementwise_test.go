// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEqual_IgnoresLayout checks logical equality across layouts and shapes.
func TestEqual_IgnoresLayout(t *testing.T) {
	r := MustNew(t, []float64{1, 2, 3, 4}, 2, 2, matrix.Row)
	c := MustNew(t, []float64{1, 3, 2, 4}, 2, 2, matrix.Col)
	assert.True(t, matrix.Equal(r, c))
	assert.True(t, matrix.Equal(hide{r}, c))

	// Same buffer, same dims, different layout → different matrices.
	c2 := MustNew(t, []float64{1, 2, 3, 4}, 2, 2, matrix.Col)
	assert.False(t, matrix.Equal(r, c2))

	// Same buffer, different dims.
	flat := MustNew(t, []float64{1, 2, 3, 4}, 1, 4, matrix.Row)
	assert.False(t, matrix.Equal(r, flat))

	assert.False(t, matrix.Equal(r, nil))
}

// TestAllClose covers tolerances and the non-finite relation.
func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}})
	b := MustRows(t, [][]float64{{1 + 1e-10, 2}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	inf, err := matrix.New([]float64{math.Inf(1), 2}, 1, 2, matrix.Row, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	ok, err = matrix.AllClose(inf, inf, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.True(t, matrix.EqualApprox(a, b))
	assert.False(t, matrix.EqualApprox(a, b, matrix.WithEpsilon(0)))
}

// TestClip clamps and normalizes swapped bounds.
func TestClip(t *testing.T) {
	a := MustRows(t, [][]float64{{-5, 0.5, 5}})

	out, err := matrix.Clip(a, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0.5, 1}}, rowsOf(t, out))

	_, err = matrix.Clip(a, math.NaN(), 1)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
