// SPDX-License-Identifier: MIT
// Package dist: the Distribution contract and shared helpers.

package dist

import (
	"math"
	"math/rand/v2"
)

// Distribution is a univariate probability distribution.
type Distribution interface {
	// PDF returns the density at x; for discrete families the mass.
	PDF(x float64) float64
	// CDF returns P(X ≤ x).
	CDF(x float64) float64
	// Mean returns E[X]; NaN when undefined.
	Mean() float64
	// Var returns Var[X]; +Inf or NaN when undefined.
	Var() float64
	// SD returns sqrt(Var[X]).
	SD() float64
	// Sample draws n variates from src. n ≤ 0 yields an empty slice;
	// a nil src uses NewSource(0).
	Sample(n int, src rand.Source) []float64
	// String names the family and its parameters, e.g. "Bernoulli(p=0.1)".
	String() string
}

// Stats holds the moments reported for a distribution.
type Stats struct {
	Mean float64 `json:"mean" yaml:"mean"`
	Var  float64 `json:"var"  yaml:"var"`
	SD   float64 `json:"sd"   yaml:"sd"`
}

// Summary collects Mean, Var and SD of d.
func Summary(d Distribution) Stats {
	return Stats{Mean: d.Mean(), Var: d.Var(), SD: d.SD()}
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// draw fills a fresh slice with n calls of rnd.
func draw(n int, rnd func() float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = rnd()
	}

	return out
}

// orDefault substitutes the default deterministic source for nil.
func orDefault(src rand.Source) rand.Source {
	if src == nil {
		return NewSource(0)
	}

	return src
}
