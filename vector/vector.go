// SPDX-License-Identifier: MIT
// Package vector: element-wise combinations, maps and reductions.
//
// Add, Sub, Mul, Div and Scale delegate to gonum/floats after the length
// check; ZipWith is the general form and agrees with them element by element.

package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ZipWith applies f pairwise: out[i] = f(a[i], b[i]).
//
// Empty inputs of equal length yield an empty, non-nil slice.
//
// Complexity: O(n) time, O(n) space.
func ZipWith(f func(x, y float64) float64, a, b []float64) ([]float64, error) {
	if f == nil {
		return nil, vectorErrorf(opZipWith, ErrNilFunc)
	}
	if len(a) != len(b) {
		return nil, lengthErr(opZipWith, len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}

	return out, nil
}

// Add returns a + b element-wise.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, lengthErr(opAdd, len(a), len(b))
	}

	return floats.AddTo(make([]float64, len(a)), a, b), nil
}

// Sub returns a - b element-wise.
func Sub(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, lengthErr(opSub, len(a), len(b))
	}

	return floats.SubTo(make([]float64, len(a)), a, b), nil
}

// Mul returns the element-wise product a ∘ b.
func Mul(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, lengthErr(opMul, len(a), len(b))
	}

	return floats.MulTo(make([]float64, len(a)), a, b), nil
}

// Div returns a / b element-wise. Division by zero follows IEEE-754
// (±Inf or NaN) and is not an error.
func Div(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, lengthErr(opDiv, len(a), len(b))
	}

	return floats.DivTo(make([]float64, len(a)), a, b), nil
}

// Scale returns c·a.
func Scale(c float64, a []float64) []float64 {
	return floats.ScaleTo(make([]float64, len(a)), c, a)
}

// Fmap returns f applied to each element.
func Fmap(f func(float64) float64, a []float64) ([]float64, error) {
	if f == nil {
		return nil, vectorErrorf(opFmap, ErrNilFunc)
	}
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = f(v)
	}

	return out, nil
}

// Reduce folds a from the left starting at init.
func Reduce(f func(acc, v float64) float64, init float64, a []float64) (float64, error) {
	if f == nil {
		return 0, vectorErrorf(opReduce, ErrNilFunc)
	}
	acc := init
	for _, v := range a {
		acc = f(acc, v)
	}

	return acc, nil
}

// Sum returns the sum of the elements; 0 for an empty slice.
func Sum(a []float64) float64 {
	return floats.Sum(a)
}

// Dot returns Σ a[i]·b[i].
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthErr(opDot, len(a), len(b))
	}

	return floats.Dot(a, b), nil
}

// Norm returns the L-p norm of a. p = math.Inf(1) gives the max-abs norm.
// p must be ≥ 1; smaller values return NaN.
func Norm(a []float64, p float64) float64 {
	if math.IsNaN(p) || p < 1 {
		return math.NaN()
	}

	return floats.Norm(a, p)
}
