// SPDX-License-Identifier: MIT
// Package vector: sequence generators.

package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// seqTolerance absorbs accumulated rounding so an end value reached by
// repeated stepping is still included.
const seqTolerance = 1e-10

// MaxLen caps the number of elements any generator produces.
const MaxLen = math.MaxInt32

// Seq returns start, start+step, ... up to and including end.
// More than MaxLen elements is reported as ErrBadCount.
//
// step must be finite and non-zero and point from start toward end.
// start == end yields a single element regardless of step sign.
// Elements are computed as start + i*step so error does not accumulate.
func Seq(start, end, step float64) ([]float64, error) {
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return nil, vectorErrorf(opSeq, fmt.Errorf("non-finite bound: %w", ErrBadStep))
	}
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, vectorErrorf(opSeq, ErrBadStep)
	}
	if start == end {
		return []float64{start}, nil
	}
	if (end-start)*step < 0 {
		return nil, vectorErrorf(opSeq, fmt.Errorf("step %g moves away from %g: %w", step, end, ErrBadStep))
	}

	q := math.Floor((end-start)/step + seqTolerance)
	if math.IsInf(q, 0) || q >= MaxLen {
		return nil, vectorErrorf(opSeq, fmt.Errorf("%g elements exceed %d: %w", q+1, MaxLen, ErrBadCount))
	}
	n := int(q) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out, nil
}

// Linspace returns n evenly spaced values over [lo, hi], endpoints included.
// n = 0 yields an empty slice; n = 1 yields {lo}.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	switch {
	case n < 0 || n > MaxLen:
		return nil, vectorErrorf(opLinspace, ErrBadCount)
	case n == 0:
		return []float64{}, nil
	case n == 1:
		return []float64{lo}, nil
	}

	return floats.Span(make([]float64, n), lo, hi), nil
}

// Zeros returns n zeros.
func Zeros(n int) ([]float64, error) {
	if n < 0 || n > MaxLen {
		return nil, vectorErrorf(opZeros, ErrBadCount)
	}

	return make([]float64, n), nil
}

// Ones returns n ones.
func Ones(n int) ([]float64, error) {
	out, err := Zeros(n)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = 1
	}

	return out, nil
}
