package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/vector"
)

// ExampleZipWith combines two slices and agrees with Add.
func ExampleZipWith() {
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}

	z, _ := vector.ZipWith(func(x, y float64) float64 { return x + y }, a, b)
	s, _ := vector.Add(a, b)
	fmt.Println(vector.Format(z))
	fmt.Println(vector.Equal(z, s))

	// Output:
	// [6, 8, 10, 12]
	// true
}

// ExampleSeq builds an inclusive range.
func ExampleSeq() {
	s, _ := vector.Seq(1, 2, 0.25)
	fmt.Println(vector.Format(s))

	// Output:
	// [1, 1.25, 1.5, 1.75, 2]
}
