// SPDX-License-Identifier: MIT
// Package scenario: the three demonstration reports.

package scenario

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dist"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/vector"
)

// BernoulliResult describes Bernoulli(P) evaluated at At.
type BernoulliResult struct {
	Dist string  `json:"dist" yaml:"dist"`
	P    float64 `json:"p"    yaml:"p"`
	At   float64 `json:"at"   yaml:"at"`
	PMF  float64 `json:"pmf"  yaml:"pmf"`
	Mean float64 `json:"mean" yaml:"mean"`
	Var  float64 `json:"var"  yaml:"var"`
	SD   float64 `json:"sd"   yaml:"sd"`
}

// BernoulliReport builds Bernoulli(p) and evaluates its mass at at.
func BernoulliReport(p, at float64) (*BernoulliResult, error) {
	b, err := dist.NewBernoulli(p)
	if err != nil {
		return nil, fmt.Errorf("bernoulli report: %w", err)
	}
	s := dist.Summary(b)

	return &BernoulliResult{
		Dist: b.String(),
		P:    p,
		At:   at,
		PMF:  b.PDF(at),
		Mean: s.Mean,
		Var:  s.Var,
		SD:   s.SD,
	}, nil
}

// ZipResult holds the element-wise sum computed by ZipWith and by Add.
type ZipResult struct {
	A       []float64 `json:"a"        yaml:"a,flow"`
	B       []float64 `json:"b"        yaml:"b,flow"`
	ZipWith []float64 `json:"zip_with" yaml:"zip_with,flow"`
	Add     []float64 `json:"add"      yaml:"add,flow"`
	Match   bool      `json:"match"    yaml:"match"`
}

// ZipReport sums a and b with vector.ZipWith(+) and vector.Add and reports
// whether both agree.
func ZipReport(a, b []float64) (*ZipResult, error) {
	zipped, err := vector.ZipWith(func(x, y float64) float64 { return x + y }, a, b)
	if err != nil {
		return nil, fmt.Errorf("zip report: %w", err)
	}
	added, err := vector.Add(a, b)
	if err != nil {
		return nil, fmt.Errorf("zip report: %w", err)
	}

	return &ZipResult{
		A:       append([]float64(nil), a...),
		B:       append([]float64(nil), b...),
		ZipWith: zipped,
		Add:     added,
		Match:   vector.Equal(zipped, added),
	}, nil
}

// MatrixView is a serializable snapshot of a *matrix.Dense: shape, layout
// and the flat buffer in storage order.
type MatrixView struct {
	Rows   int       `json:"rows"   yaml:"rows"`
	Cols   int       `json:"cols"   yaml:"cols"`
	Layout string    `json:"layout" yaml:"layout"`
	Data   []float64 `json:"data"   yaml:"data,flow"`
}

// ViewOf snapshots m.
func ViewOf(m *matrix.Dense) MatrixView {
	r, c := m.Shape()
	return MatrixView{Rows: r, Cols: c, Layout: m.Layout().String(), Data: m.Data()}
}

// Dense rebuilds the matrix described by v.
func (v MatrixView) Dense() (*matrix.Dense, error) {
	var l matrix.Layout
	switch v.Layout {
	case matrix.Row.String():
		l = matrix.Row
	case matrix.Col.String():
		l = matrix.Col
	default:
		return nil, fmt.Errorf("matrix view: layout %q: %w", v.Layout, matrix.ErrUnknownLayout)
	}

	return matrix.New(v.Data, v.Rows, v.Cols, l)
}

// TransposeResult compares T(input) with the alternate-layout matrix built
// over the same buffer.
type TransposeResult struct {
	Input      MatrixView `json:"input"      yaml:"input"`
	Transposed MatrixView `json:"transposed" yaml:"transposed"`
	Expected   MatrixView `json:"expected"   yaml:"expected"`
	Match      bool       `json:"match"      yaml:"match"`
}

// TransposeReport builds New(data, rows, cols, layout), transposes it and
// compares the result with New(data, cols, rows, layout.Flip()).
//
// Match requires logical equality, the same layout tag and the same flat
// buffer.
func TransposeReport(data []float64, rows, cols int, layout matrix.Layout) (*TransposeResult, error) {
	in, err := matrix.New(data, rows, cols, layout)
	if err != nil {
		return nil, fmt.Errorf("transpose report: %w", err)
	}
	want, err := matrix.New(data, cols, rows, layout.Flip())
	if err != nil {
		return nil, fmt.Errorf("transpose report: %w", err)
	}
	got := in.T()

	return &TransposeResult{
		Input:      ViewOf(in),
		Transposed: ViewOf(got),
		Expected:   ViewOf(want),
		Match: matrix.Equal(got, want) &&
			got.Layout() == want.Layout() &&
			vector.Equal(got.Data(), want.Data()),
	}, nil
}
