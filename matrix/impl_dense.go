// SPDX-License-Identifier: MIT

// Package matrix - Dense storage with an explicit layout tag & safe accessors.
//
// Purpose:
//   - Hold a flat buffer together with the Layout that maps it onto (i,j):
//     Row ⇒ offset = i*cols + j, Col ⇒ offset = j*rows + i.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed logical i→j loop orders).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - T() is the cheap transpose: it copies the buffer once, swaps dims and flips the tag.
//   - ChangeLayout() keeps the logical matrix and re-lays the buffer out.
//   - Data() returns the buffer in the matrix's own layout; use RowMajor() for a fixed order.
//
// Complexity quicksheet:
//   - New/NewDense: O(r*c); At/Set: O(1); Clone/T/ChangeLayout: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxApply    = "Apply"
	ctxRow      = "Row"
	ctxCol      = "Col"
	ctxNew      = "New"
	ctxNewDense = "NewDense"
	ctxRows     = "FromRows"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Renders as "Dense.<method>(row,col): <sentinel>" and preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete matrix over a flat buffer.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c interpreted according to layout.
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply.
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous storage (len == r*c)
	layout         Layout    // Row or Col
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New builds a rows×cols matrix from a flat buffer interpreted under layout.
// The buffer is copied; later mutation of data does not affect the matrix.
//
// Implementation:
//   - Stage 1: validate layout, then rows>0 && cols>0, then len(data)==rows*cols.
//   - Stage 2: resolve options; under the finite-only policy scan data for NaN/Inf.
//   - Stage 3: copy data into a fresh buffer.
//
// Errors:
//   - ErrUnknownLayout, ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// Example:
//
//	m, _ := matrix.New([]float64{1, 2, 3, 4}, 2, 2, matrix.Col) // [[1 3] [2 4]]
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(data []float64, rows, cols int, layout Layout, opts ...Option) (*Dense, error) {
	if !layout.valid() {
		return nil, matrixErrorf(ctxNew, ErrUnknownLayout)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("len(data)=%d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch))
	}

	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for k, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(ctxNew, fmt.Errorf("data[%d]: %w", k, ErrNaNInf))
			}
		}
	}

	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		layout:         layout,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDense creates an r×c zero matrix. Layout defaults to Row (see WithLayout).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNewDense, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		layout:         o.layout,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromRows builds a matrix from a slice of equal-length rows.
// The result uses the layout from options (Row by default).
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrDimensionMismatch for ragged input.
//   - ErrNaNInf under the finite-only policy.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxRows, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(ctxRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(ctxRows, err)
			}
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Layout returns the layout tag of the backing buffer.
func (m *Dense) Layout() Layout { return m.layout }

// offset maps (row,col) to the flat index without bounds checks.
func (m *Dense) offset(row, col int) int {
	if m.layout == Col {
		return col*m.r + row
	}

	return row*m.c + col
}

// at is the unchecked read used by kernels after shape validation.
func (m *Dense) at(row, col int) float64 { return m.data[m.offset(row, col)] }

// indexOf bounds-checks (row,col) and returns the flat offset or ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.offset(row, col), nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the policy.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same layout and numeric policy).
func (m *Dense) Clone() Matrix { return m.clone() }

// clone is the typed variant of Clone used inside the package.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		layout:         m.layout,
		validateNaNInf: m.validateNaNInf,
	}
}

// Data returns a copy of the flat buffer in the matrix's own layout.
func (m *Dense) Data() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// RowMajor returns a copy of the elements in logical row-major order,
// independent of the layout tag.
func (m *Dense) RowMajor() []float64 {
	if m.layout == Row {
		return m.Data()
	}
	out := make([]float64, 0, len(m.data))
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out = append(out, m.at(i, j))
		}
	}

	return out
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = m.at(i, j)
	}

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.at(i, j)
	}

	return out, nil
}

// T returns the transpose mᵀ.
// The buffer is copied verbatim; dimensions swap and the layout tag flips,
// so element (i,j) of the result is element (j,i) of m.
//
// Example:
//
//	a, _ := matrix.New([]float64{1, 2, 3, 4}, 4, 1, matrix.Col)
//	a.T() // 1×4, Row layout, data {1,2,3,4}
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) T() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.c,
		c:              m.r,
		data:           cp,
		layout:         m.layout.Flip(),
		validateNaNInf: m.validateNaNInf,
	}
}

// ChangeLayout returns the same logical matrix stored in the other layout.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) ChangeLayout() *Dense {
	return m.toLayout(m.layout.Flip())
}

// toLayout re-lays the buffer out under l; a plain clone when l is current.
func (m *Dense) toLayout(l Layout) *Dense {
	if l == m.layout {
		return m.clone()
	}
	out := &Dense{
		r:              m.r,
		c:              m.c,
		data:           make([]float64, len(m.data)),
		layout:         l,
		validateNaNInf: m.validateNaNInf,
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[out.offset(i, j)] = m.at(i, j)
		}
	}

	return out
}

// String provides a readable row-wise dump for diagnostics: "[1, 2]\n[3, 4]\n".
// Rows are rendered in logical order regardless of layout.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.at(i, j)))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in logical row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.at(i, j)) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in logical i→j order.
// Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value under the policy.
//
// Complexity: O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, off int
	var nv float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			off = m.offset(i, j)
			nv = f(i, j, m.data[off])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[off] = nv
		}
	}

	return nil
}
