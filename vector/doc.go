// Package vector provides element-wise and statistical helpers over plain
// []float64 slices.
//
// ✨ Key features:
//   - ZipWith: combine two equal-length slices with any binary function
//   - Add/Sub/Mul/Div/Scale: the common combinations, backed by gonum/floats
//   - Fmap/Reduce/Sum/Dot/Norm: single-slice transforms and reductions
//   - Mean/Var/SD/Cov/Cor: sample statistics (n-1 denominator) via gonum/stat
//   - Seq/Linspace/Zeros/Ones: generators
//   - DTW: dynamic time warping distance and alignment path
//
// ⚙️ Usage:
//
//	a := []float64{1, 2, 3, 4}
//	b := []float64{5, 6, 7, 8}
//	z, _ := vector.ZipWith(func(x, y float64) float64 { return x + y }, a, b)
//	s, _ := vector.Add(a, b)
//	vector.Equal(z, s) // true: {6, 8, 10, 12}
//
// Every function returns a fresh slice and leaves its inputs untouched.
// Length disagreements are reported with ErrLengthMismatch; use errors.Is.
package vector
