// SPDX-License-Identifier: MIT
// Package vector: sample statistics.
//
// Var, SD and Cov use the unbiased n-1 denominator, matching gonum/stat.

package vector

import (
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean. Requires at least one element.
func Mean(a []float64) (float64, error) {
	if len(a) == 0 {
		return 0, vectorErrorf(opMean, ErrEmpty)
	}

	return stat.Mean(a, nil), nil
}

// Var returns the sample variance. Requires at least two elements.
func Var(a []float64) (float64, error) {
	if len(a) < 2 {
		return 0, vectorErrorf(opVar, ErrEmpty)
	}

	return stat.Variance(a, nil), nil
}

// SD returns the sample standard deviation, sqrt(Var).
func SD(a []float64) (float64, error) {
	if len(a) < 2 {
		return 0, vectorErrorf(opVar, ErrEmpty)
	}

	return stat.StdDev(a, nil), nil
}

// Cov returns the sample covariance of two equal-length slices.
func Cov(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthErr(opCov, len(a), len(b))
	}
	if len(a) < 2 {
		return 0, vectorErrorf(opCov, ErrEmpty)
	}

	return stat.Covariance(a, b, nil), nil
}

// Cor returns the Pearson correlation. A constant input yields NaN.
func Cor(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthErr(opCor, len(a), len(b))
	}
	if len(a) < 2 {
		return 0, vectorErrorf(opCor, ErrEmpty)
	}

	return stat.Correlation(a, b, nil), nil
}
