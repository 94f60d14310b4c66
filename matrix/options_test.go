// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	assert.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	assert.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	assert.Equal(t, matrix.DefaultLayout, o.Layout())
}

// TestNewMatrixOptions_LastWriterWins ensures setters apply in order.
func TestNewMatrixOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	assert.True(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithLayout(matrix.Col), nil, matrix.WithEpsilon(0.5))
	assert.Equal(t, matrix.Col, o.Layout())
	assert.Equal(t, 0.5, o.Epsilon())
}

// TestOptionPanics covers programmer-error panics.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { matrix.WithLayout(matrix.Layout(3)) })
}

// TestWithLayout_AppliesToNewDense checks constructors honor the default layout option.
func TestWithLayout_AppliesToNewDense(t *testing.T) {
	m, err := matrix.NewDense(2, 3, matrix.WithLayout(matrix.Col))
	require.NoError(t, err)
	assert.Equal(t, matrix.Col, m.Layout())

	id, err := matrix.NewIdentity(3, matrix.WithLayout(matrix.Col))
	require.NoError(t, err)
	v, _ := id.At(2, 2)
	assert.Equal(t, 1.0, v)
	v, _ = id.At(0, 2)
	assert.Equal(t, 0.0, v)
}
