// SPDX-License-Identifier: MIT
// Package vector: Dynamic Time Warping distance between two sequences.
//
// Recurrence (1-based, D[0][0] = 0, D[i][0] = D[0][j] = +Inf):
//
//	D[i][j] = |a[i-1] - b[j-1]| + min(D[i-1][j-1], D[i-1][j]+penalty, D[i][j-1]+penalty)
//
// The distance uses two rolling rows, O(min(n,m)) memory. The alignment path
// needs the whole table, kept in a *matrix.Dense.

package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/matrix"
)

// ErrWindowTooNarrow indicates a Sakoe–Chiba window smaller than the length
// difference, which leaves no admissible alignment.
var ErrWindowTooNarrow = errors.New("vector: dtw window narrower than length difference")

const opDTW = "DTW"

// DTWOption configures DTW.
type DTWOption func(*dtwOptions)

type dtwOptions struct {
	window   int // 0 = unconstrained
	penalty  float64
	withPath bool
}

// WithWindow restricts alignments to |i-j| ≤ w. w = 0 disables the band.
// Panics on w < 0.
func WithWindow(w int) DTWOption {
	if w < 0 {
		panic(fmt.Sprintf("vector.WithWindow: negative window %d", w))
	}
	return func(o *dtwOptions) { o.window = w }
}

// WithSlopePenalty adds p to every insertion or deletion step.
// Panics on negative or non-finite p.
func WithSlopePenalty(p float64) DTWOption {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		panic(fmt.Sprintf("vector.WithSlopePenalty: invalid penalty %v", p))
	}
	return func(o *dtwOptions) { o.penalty = p }
}

// WithPath requests the optimal alignment path. Memory grows to O(n·m).
func WithPath() DTWOption {
	return func(o *dtwOptions) { o.withPath = true }
}

// DTW returns the warping distance between a and b and, with WithPath, the
// optimal alignment as index pairs (i into a, j into b) from (0,0) to
// (n-1,m-1). Without WithPath the path is nil.
//
// Errors: ErrEmpty when either input is empty, ErrWindowTooNarrow when the
// window cannot bridge the length difference.
//
// Complexity: O(n·m) time.
func DTW(a, b []float64, opts ...DTWOption) (float64, [][2]int, error) {
	var o dtwOptions
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, vectorErrorf(opDTW, ErrEmpty)
	}
	if o.window > 0 && absInt(n-m) > o.window {
		return 0, nil, vectorErrorf(opDTW, fmt.Errorf("window %d, lengths %d and %d: %w", o.window, n, m, ErrWindowTooNarrow))
	}

	if o.withPath {
		return dtwTable(a, b, o)
	}

	return dtwRolling(a, b, o), nil, nil
}

// outside reports whether cell (i,j) (1-based) falls outside the band.
func (o dtwOptions) outside(i, j int) bool {
	return o.window > 0 && absInt(i-j) > o.window
}

func dtwRolling(a, b []float64, o dtwOptions) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if o.outside(i, j) {
				curr[j] = inf
				continue
			}
			best := min(prev[j-1], prev[j]+o.penalty, curr[j-1]+o.penalty)
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

func dtwTable(a, b []float64, o dtwOptions) (float64, [][2]int, error) {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	// +Inf borders are legitimate here.
	d, err := matrix.NewDense(n+1, m+1, matrix.WithNoValidateNaNInf())
	if err != nil {
		return 0, nil, vectorErrorf(opDTW, err)
	}
	at := func(i, j int) float64 {
		v, _ := d.At(i, j)
		return v
	}
	set := func(i, j int, v float64) { _ = d.Set(i, j, v) }

	for i := 1; i <= n; i++ {
		set(i, 0, inf)
	}
	for j := 1; j <= m; j++ {
		set(0, j, inf)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if o.outside(i, j) {
				set(i, j, inf)
				continue
			}
			best := min(at(i-1, j-1), at(i-1, j)+o.penalty, at(i, j-1)+o.penalty)
			set(i, j, math.Abs(a[i-1]-b[j-1])+best)
		}
	}

	// Backtrack from (n,m) to (1,1); diagonal wins ties.
	path := make([][2]int, 0, n+m)
	i, j := n, m
	for i > 1 || j > 1 {
		path = append(path, [2]int{i - 1, j - 1})
		diag, up, left := inf, inf, inf
		if i > 1 && j > 1 {
			diag = at(i-1, j-1)
		}
		if i > 1 {
			up = at(i-1, j) + o.penalty
		}
		if j > 1 {
			left = at(i, j-1) + o.penalty
		}
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	path = append(path, [2]int{0, 0})
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return at(n, m), path, nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
