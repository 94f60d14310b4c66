package scenario_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/scenario"
)

func ExampleTransposeReport() {
	res, _ := scenario.TransposeReport([]float64{1, 2, 3, 4}, 4, 1, matrix.Col)
	fmt.Println(res.Transposed.Rows, res.Transposed.Cols, res.Transposed.Layout, res.Match)

	// Output:
	// 1 4 Row true
}
