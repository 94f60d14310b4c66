// SPDX-License-Identifier: MIT
// Package matrix: labeled table rendering.

package matrix

import (
	"strconv"
	"strings"
)

// Format renders m as a labeled table with right-aligned cells:
//
//	     c[0] c[1]
//	r[0]    1    3
//	r[1]    2    4
//
// Values use the shortest 'g' representation. Rows are logical rows, so the
// output does not depend on the layout tag. A nil matrix renders as "nil".
//
// Complexity: O(r*c).
func Format(m Matrix) string {
	if ValidateNotNil(m) != nil {
		return "nil"
	}
	d, err := asDense(m)
	if err != nil {
		return "nil"
	}

	cells := make([][]string, d.r)
	width := 0
	var i, j int
	for j = 0; j < d.c; j++ {
		width = max(width, len(colLabel(j)))
	}
	for i = 0; i < d.r; i++ {
		cells[i] = make([]string, d.c)
		for j = 0; j < d.c; j++ {
			cells[i][j] = strconv.FormatFloat(d.at(i, j), 'g', -1, 64)
			width = max(width, len(cells[i][j]))
		}
	}
	labelWidth := len(rowLabel(d.r - 1))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for j = 0; j < d.c; j++ {
		b.WriteByte(' ')
		b.WriteString(padLeft(colLabel(j), width))
	}
	for i = 0; i < d.r; i++ {
		b.WriteByte('\n')
		b.WriteString(padLeft(rowLabel(i), labelWidth))
		for j = 0; j < d.c; j++ {
			b.WriteByte(' ')
			b.WriteString(padLeft(cells[i][j], width))
		}
	}

	return b.String()
}

func rowLabel(i int) string { return "r[" + strconv.Itoa(i) + "]" }

func colLabel(j int) string { return "c[" + strconv.Itoa(j) + "]" }

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}

	return strings.Repeat(" ", w-len(s)) + s
}
