// Package dist provides parametric probability distributions with closed-form
// moments and reproducible sampling.
//
// Every distribution implements Distribution:
//
//	PDF(x)    – density, or probability mass for discrete families
//	CDF(x)    – cumulative probability P(X ≤ x)
//	Mean/Var/SD
//	Sample(n, src)
//
// Constructors validate parameters and report ErrInvalidParameter:
//
//	b, err := dist.NewBernoulli(0.1)
//	b.PDF(0) // 0.9
//	b.Mean() // 0.1
//	b.Var()  // 0.09
//	b.SD()   // 0.3
//
// Evaluation and sampling delegate to gonum.org/v1/gonum/stat/distuv.
// Randomness always comes from an explicit math/rand/v2 Source; a nil source
// selects a fixed default seed, so no call is ever time-seeded.
package dist
