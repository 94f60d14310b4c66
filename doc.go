// Package lvnum is a small numeric toolkit: probability distributions,
// float64 vectors and dense matrices that carry a storage-layout tag.
//
// 🚀 What is inside?
//
//	dist/       Bernoulli, Binomial, Uniform, Normal, Gamma, Beta, StudentT
//	            with PDF/CDF, closed-form moments and seeded sampling
//	vector/     ZipWith, Add/Sub/Mul/Div, maps, reductions, statistics,
//	            generators (Seq, Linspace), DTW
//	matrix/     Dense matrices built from a flat buffer in Row or Col layout,
//	            transpose by layout flip, linear algebra, gonum interop
//	scenario/   the three demonstrations as checkable reports
//	cmd/lvnum/  CLI: bernoulli, zip, transpose, check
//
// Quick example:
//
//	a, _ := matrix.New([]float64{1, 2, 3, 4}, 4, 1, matrix.Col)
//	b, _ := matrix.New([]float64{1, 2, 3, 4}, 1, 4, matrix.Row)
//	matrix.Equal(a.T(), b) // true
//
//	go install github.com/katalvlaran/lvnum/cmd/lvnum@latest
//	lvnum check
package lvnum
