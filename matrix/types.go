// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and the generic kernels.
// This file contains ONLY the public Matrix interface and the Layout tag.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "strconv"

// Layout tells how a flat buffer maps onto (row, col) coordinates.
//
//   - Row: the buffer fills the matrix row by row, offset = i*cols + j.
//   - Col: the buffer fills the matrix column by column, offset = j*rows + i.
//
// Transposing a Dense flips the tag and swaps the dimensions; the buffer
// itself is not reordered.
type Layout uint8

const (
	// Row is the row-major layout (the zero value).
	Row Layout = iota
	// Col is the column-major layout.
	Col
)

// String returns "Row" or "Col"; unknown values render as "Layout(n)".
func (l Layout) String() string {
	switch l {
	case Row:
		return "Row"
	case Col:
		return "Col"
	default:
		return "Layout(" + strconv.Itoa(int(l)) + ")"
	}
}

// Flip returns the other layout (Row ⇄ Col).
func (l Layout) Flip() Layout {
	if l == Row {
		return Col
	}

	return Row
}

// valid reports whether l is one of the two declared layouts.
func (l Layout) valid() bool { return l == Row || l == Col }

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept Matrix and take flat-buffer fast paths when given *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
