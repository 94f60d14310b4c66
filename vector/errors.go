// SPDX-License-Identifier: MIT
// Package vector: sentinel errors.
//
// Callers branch with errors.Is; functions attach context with %w.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates two operands of different lengths.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrEmpty indicates an input with too few elements for the statistic.
	ErrEmpty = errors.New("vector: not enough elements")

	// ErrNilFunc indicates a nil function argument (ZipWith, Fmap, Reduce).
	ErrNilFunc = errors.New("vector: nil function")

	// ErrBadStep indicates a generator step that is zero, negative,
	// non-finite or points away from the end value.
	ErrBadStep = errors.New("vector: invalid step")

	// ErrBadCount indicates a negative element count for a generator, or one
	// above MaxLen.
	ErrBadCount = errors.New("vector: invalid count")
)

// Operation tags for error wrapping.
const (
	opZipWith  = "ZipWith"
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opDiv      = "Div"
	opDot      = "Dot"
	opFmap     = "Fmap"
	opReduce   = "Reduce"
	opMean     = "Mean"
	opVar      = "Var"
	opCov      = "Cov"
	opCor      = "Cor"
	opSeq      = "Seq"
	opLinspace = "Linspace"
	opZeros    = "Zeros"
)

// vectorErrorf wraps err with an operation tag.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// lengthErr builds a length mismatch error that names both lengths.
func lengthErr(op string, a, b int) error {
	return vectorErrorf(op, fmt.Errorf("%d != %d: %w", a, b, ErrLengthMismatch))
}
