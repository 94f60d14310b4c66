// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatistics checks the n-1 estimators against hand-computed values.
func TestStatistics(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{2, 4, 6, 8}

	m, err := vector.Mean(a)
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)

	v, err := vector.Var(a)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3, v, 1e-12)

	sd, err := vector.SD(a)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5.0/3), sd, 1e-12)

	c, err := vector.Cov(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/3, c, 1e-12)

	r, err := vector.Cor(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)
}

// TestStatistics_Errors covers empty and mismatched inputs.
func TestStatistics_Errors(t *testing.T) {
	_, err := vector.Mean(nil)
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = vector.Var([]float64{1})
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = vector.SD([]float64{1})
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = vector.Cov([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, vector.ErrLengthMismatch)
	_, err = vector.Cor([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, vector.ErrEmpty)
}
