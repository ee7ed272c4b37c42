package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/mogp/matrix"
)

// ExampleDense_Induced gathers the rows of one channel from a
// channel-augmented input.
func ExampleDense_Induced() {
	X, _ := matrix.FromRows([][]float64{{0, 0.0}, {1, 0.5}, {0, 1.0}})
	ch0, _ := X.Induced([]int{0, 2}, []int{1})
	fmt.Print(ch0)
	// Output:
	// [0]
	// [1]
}
