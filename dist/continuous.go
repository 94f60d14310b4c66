// SPDX-License-Identifier: MIT
// Package dist: continuous families.
//
// Moments use closed forms; densities, CDFs and variates come from
// gonum/stat/distuv.

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is the flat distribution on [Min, Max].
type Uniform struct {
	Min, Max float64
}

// NewUniform validates finite bounds with lo < hi.
func NewUniform(lo, hi float64) (*Uniform, error) {
	if !finite(lo) {
		return nil, paramErrorf("NewUniform", "min", lo)
	}
	if !finite(hi) || hi <= lo {
		return nil, paramErrorf("NewUniform", "max", hi)
	}

	return &Uniform{Min: lo, Max: hi}, nil
}

func (u *Uniform) dist(src rand.Source) distuv.Uniform {
	return distuv.Uniform{Min: u.Min, Max: u.Max, Src: src}
}

// PDF returns 1/(Max-Min) on [Min, Max] and 0 outside.
func (u *Uniform) PDF(x float64) float64 { return u.dist(nil).Prob(x) }

// CDF returns the fraction of [Min, Max] at or below x.
func (u *Uniform) CDF(x float64) float64 { return u.dist(nil).CDF(x) }

// Mean returns (Min+Max)/2.
func (u *Uniform) Mean() float64 { return (u.Min + u.Max) / 2 }

// Var returns (Max-Min)²/12.
func (u *Uniform) Var() float64 {
	w := u.Max - u.Min
	return w * w / 12
}

// SD returns sqrt(Var).
func (u *Uniform) SD() float64 { return math.Sqrt(u.Var()) }

// Sample draws n values from [Min, Max].
func (u *Uniform) Sample(n int, src rand.Source) []float64 {
	d := u.dist(orDefault(src))
	return draw(n, d.Rand)
}

// String returns "Uniform(min=…, max=…)".
func (u *Uniform) String() string { return fmt.Sprintf("Uniform(min=%g, max=%g)", u.Min, u.Max) }

// Normal is the Gaussian with mean Mu and standard deviation Sigma.
type Normal struct {
	Mu, Sigma float64
}

// NewNormal validates finite mu and sigma > 0.
func NewNormal(mu, sigma float64) (*Normal, error) {
	if !finite(mu) {
		return nil, paramErrorf("NewNormal", "mu", mu)
	}
	if !finite(sigma) || sigma <= 0 {
		return nil, paramErrorf("NewNormal", "sigma", sigma)
	}

	return &Normal{Mu: mu, Sigma: sigma}, nil
}

func (d *Normal) dist(src rand.Source) distuv.Normal {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma, Src: src}
}

// PDF returns the Gaussian density at x.
func (d *Normal) PDF(x float64) float64 { return d.dist(nil).Prob(x) }

// CDF returns Φ((x-Mu)/Sigma).
func (d *Normal) CDF(x float64) float64 { return d.dist(nil).CDF(x) }

// Mean returns Mu.
func (d *Normal) Mean() float64 { return d.Mu }

// Var returns Sigma².
func (d *Normal) Var() float64 { return d.Sigma * d.Sigma }

// SD returns Sigma.
func (d *Normal) SD() float64 { return d.Sigma }

// Sample draws n Gaussian variates.
func (d *Normal) Sample(n int, src rand.Source) []float64 {
	g := d.dist(orDefault(src))
	return draw(n, g.Rand)
}

// String returns "Normal(mu=…, sigma=…)".
func (d *Normal) String() string { return fmt.Sprintf("Normal(mu=%g, sigma=%g)", d.Mu, d.Sigma) }

// Gamma is parameterized by Shape (α) and Rate (β); mean α/β.
type Gamma struct {
	Shape, Rate float64
}

// NewGamma validates shape > 0 and rate > 0.
func NewGamma(shape, rate float64) (*Gamma, error) {
	if !finite(shape) || shape <= 0 {
		return nil, paramErrorf("NewGamma", "shape", shape)
	}
	if !finite(rate) || rate <= 0 {
		return nil, paramErrorf("NewGamma", "rate", rate)
	}

	return &Gamma{Shape: shape, Rate: rate}, nil
}

// distuv.Gamma's Beta field is the rate.
func (g *Gamma) dist(src rand.Source) distuv.Gamma {
	return distuv.Gamma{Alpha: g.Shape, Beta: g.Rate, Src: src}
}

// PDF returns the density at x; 0 for negative x.
func (g *Gamma) PDF(x float64) float64 { return g.dist(nil).Prob(x) }

// CDF returns the regularized lower incomplete gamma at Rate·x.
func (g *Gamma) CDF(x float64) float64 { return g.dist(nil).CDF(x) }

// Mean returns Shape/Rate.
func (g *Gamma) Mean() float64 { return g.Shape / g.Rate }

// Var returns Shape/Rate².
func (g *Gamma) Var() float64 { return g.Shape / (g.Rate * g.Rate) }

// SD returns sqrt(Var).
func (g *Gamma) SD() float64 { return math.Sqrt(g.Var()) }

// Sample draws n positive variates.
func (g *Gamma) Sample(n int, src rand.Source) []float64 {
	d := g.dist(orDefault(src))
	return draw(n, d.Rand)
}

// String returns "Gamma(shape=…, rate=…)".
func (g *Gamma) String() string { return fmt.Sprintf("Gamma(shape=%g, rate=%g)", g.Shape, g.Rate) }

// Beta is supported on [0, 1] with shapes Alpha and Beta.
type Beta struct {
	Alpha, Beta float64
}

// NewBeta validates alpha > 0 and beta > 0.
func NewBeta(alpha, beta float64) (*Beta, error) {
	if !finite(alpha) || alpha <= 0 {
		return nil, paramErrorf("NewBeta", "alpha", alpha)
	}
	if !finite(beta) || beta <= 0 {
		return nil, paramErrorf("NewBeta", "beta", beta)
	}

	return &Beta{Alpha: alpha, Beta: beta}, nil
}

func (b *Beta) dist(src rand.Source) distuv.Beta {
	return distuv.Beta{Alpha: b.Alpha, Beta: b.Beta, Src: src}
}

// PDF returns the density at x; 0 outside [0, 1].
func (b *Beta) PDF(x float64) float64 { return b.dist(nil).Prob(x) }

// CDF returns the regularized incomplete beta at x.
func (b *Beta) CDF(x float64) float64 { return b.dist(nil).CDF(x) }

// Mean returns Alpha/(Alpha+Beta).
func (b *Beta) Mean() float64 { return b.Alpha / (b.Alpha + b.Beta) }

// Var returns αβ/((α+β)²(α+β+1)).
func (b *Beta) Var() float64 {
	s := b.Alpha + b.Beta
	return b.Alpha * b.Beta / (s * s * (s + 1))
}

// SD returns sqrt(Var).
func (b *Beta) SD() float64 { return math.Sqrt(b.Var()) }

// Sample draws n values in [0, 1].
func (b *Beta) Sample(n int, src rand.Source) []float64 {
	d := b.dist(orDefault(src))
	return draw(n, d.Rand)
}

// String returns "Beta(alpha=…, beta=…)".
func (b *Beta) String() string { return fmt.Sprintf("Beta(alpha=%g, beta=%g)", b.Alpha, b.Beta) }

// StudentT is the standard Student's t with Nu degrees of freedom.
// Mean is NaN for Nu ≤ 1; Var is NaN for Nu ≤ 1 and +Inf for 1 < Nu ≤ 2.
type StudentT struct {
	Nu float64
}

// NewStudentT validates nu > 0.
func NewStudentT(nu float64) (*StudentT, error) {
	if !finite(nu) || nu <= 0 {
		return nil, paramErrorf("NewStudentT", "nu", nu)
	}

	return &StudentT{Nu: nu}, nil
}

func (t *StudentT) dist(src rand.Source) distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: t.Nu, Src: src}
}

// PDF returns the density at x.
func (t *StudentT) PDF(x float64) float64 { return t.dist(nil).Prob(x) }

// CDF returns P(X ≤ x); 0.5 at 0.
func (t *StudentT) CDF(x float64) float64 { return t.dist(nil).CDF(x) }

// Mean returns 0, or NaN for Nu ≤ 1.
func (t *StudentT) Mean() float64 {
	if t.Nu <= 1 {
		return math.NaN()
	}

	return 0
}

// Var returns Nu/(Nu-2); +Inf for 1 < Nu ≤ 2 and NaN for Nu ≤ 1.
func (t *StudentT) Var() float64 {
	switch {
	case t.Nu <= 1:
		return math.NaN()
	case t.Nu <= 2:
		return math.Inf(1)
	}

	return t.Nu / (t.Nu - 2)
}

// SD returns sqrt(Var).
func (t *StudentT) SD() float64 { return math.Sqrt(t.Var()) }

// Sample draws n variates.
func (t *StudentT) Sample(n int, src rand.Source) []float64 {
	d := t.dist(orDefault(src))
	return draw(n, d.Rand)
}

// String returns "StudentT(nu=…)".
func (t *StudentT) String() string { return fmt.Sprintf("StudentT(nu=%g)", t.Nu) }

// Compile-time interface checks.
var (
	_ Distribution = (*Bernoulli)(nil)
	_ Distribution = (*Binomial)(nil)
	_ Distribution = (*Uniform)(nil)
	_ Distribution = (*Normal)(nil)
	_ Distribution = (*Gamma)(nil)
	_ Distribution = (*Beta)(nil)
	_ Distribution = (*StudentT)(nil)
)
