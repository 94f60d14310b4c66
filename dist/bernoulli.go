// SPDX-License-Identifier: MIT
// Package dist: Bernoulli distribution.

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Bernoulli is the two-point distribution on {0, 1} with P(X=1) = P.
type Bernoulli struct {
	P float64
}

// NewBernoulli validates p ∈ [0, 1].
func NewBernoulli(p float64) (*Bernoulli, error) {
	if !finite(p) || p < 0 || p > 1 {
		return nil, paramErrorf("NewBernoulli", "p", p)
	}

	return &Bernoulli{P: p}, nil
}

// dist returns the gonum counterpart bound to src.
func (b *Bernoulli) dist(src rand.Source) distuv.Bernoulli {
	return distuv.Bernoulli{P: b.P, Src: src}
}

// PDF returns P at x == 1 and 1-P at x == 0.
// Any other x, 0.5 or 2 included, has mass 0; some libraries instead
// return 1-P for every x != 1.
func (b *Bernoulli) PDF(x float64) float64 { return b.dist(nil).Prob(x) }

// CDF returns 0 below 0, 1-P on [0, 1), and 1 from 1 on.
func (b *Bernoulli) CDF(x float64) float64 { return b.dist(nil).CDF(x) }

// Mean returns P.
func (b *Bernoulli) Mean() float64 { return b.dist(nil).Mean() }

// Var returns P(1-P).
func (b *Bernoulli) Var() float64 { return b.dist(nil).Variance() }

// SD returns sqrt(P(1-P)).
func (b *Bernoulli) SD() float64 { return math.Sqrt(b.Var()) }

// Sample draws n values in {0, 1}.
func (b *Bernoulli) Sample(n int, src rand.Source) []float64 {
	d := b.dist(orDefault(src))
	return draw(n, d.Rand)
}

func (b *Bernoulli) String() string { return fmt.Sprintf("Bernoulli(p=%g)", b.P) }
