// SPDX-License-Identifier: MIT
// Package dist: Binomial distribution.

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Binomial counts successes in N independent Bernoulli(P) trials.
type Binomial struct {
	N int
	P float64
}

// NewBinomial validates n ≥ 0 and p ∈ [0, 1].
func NewBinomial(n int, p float64) (*Binomial, error) {
	if n < 0 {
		return nil, paramErrorf("NewBinomial", "n", float64(n))
	}
	if !finite(p) || p < 0 || p > 1 {
		return nil, paramErrorf("NewBinomial", "p", p)
	}

	return &Binomial{N: n, P: p}, nil
}

func (b *Binomial) dist(src rand.Source) distuv.Binomial {
	return distuv.Binomial{N: float64(b.N), P: b.P, Src: src}
}

// PDF returns the mass at x; 0 for non-integer x or x outside [0, N].
func (b *Binomial) PDF(x float64) float64 {
	if x < 0 || x > float64(b.N) || x != math.Floor(x) {
		return 0
	}
	// Degenerate p: the whole mass sits on one end.
	switch b.P {
	case 0:
		return indicator(x == 0)
	case 1:
		return indicator(x == float64(b.N))
	}

	return b.dist(nil).Prob(x)
}

// CDF returns P(X ≤ x).
func (b *Binomial) CDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x >= float64(b.N):
		return 1
	case b.P == 0:
		return 1
	case b.P == 1:
		return 0
	}

	return b.dist(nil).CDF(x)
}

// Mean returns N·P.
func (b *Binomial) Mean() float64 { return float64(b.N) * b.P }

// Var returns N·P·(1-P).
func (b *Binomial) Var() float64 { return float64(b.N) * b.P * (1 - b.P) }

// SD returns sqrt(Var).
func (b *Binomial) SD() float64 { return math.Sqrt(b.Var()) }

// Sample draws n success counts.
func (b *Binomial) Sample(n int, src rand.Source) []float64 {
	if b.N == 0 || b.P == 0 || b.P == 1 {
		k := float64(b.N) * b.P
		return draw(n, func() float64 { return k })
	}
	d := b.dist(orDefault(src))

	return draw(n, d.Rand)
}

func (b *Binomial) String() string { return fmt.Sprintf("Binomial(n=%d, p=%g)", b.N, b.P) }

func indicator(ok bool) float64 {
	if ok {
		return 1
	}

	return 0
}
