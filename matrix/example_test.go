package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
)

// ExampleDense_T shows that transposing a column-layout matrix yields the
// row-layout matrix over the same buffer.
func ExampleDense_T() {
	a, _ := matrix.New([]float64{1, 2, 3, 4}, 4, 1, matrix.Col)
	b, _ := matrix.New([]float64{1, 2, 3, 4}, 1, 4, matrix.Row)

	at := a.T()
	r, c := at.Shape()
	fmt.Println(r, c, at.Layout())
	fmt.Println(matrix.Equal(at, b))

	// Output:
	// 1 4 Row
	// true
}

// ExampleFormat prints a labeled table.
func ExampleFormat() {
	m, _ := matrix.New([]float64{1, 2, 3, 4}, 2, 2, matrix.Col)
	fmt.Println(matrix.Format(m))

	// Output:
	//      c[0] c[1]
	// r[0]    1    3
	// r[1]    2    4
}
