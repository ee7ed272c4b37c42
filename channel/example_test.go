// SPDX-License-Identifier: MIT

package channel_test

import (
	"fmt"

	"github.com/katalvlaran/mogp/channel"
)

func ExampleMerge() {
	n, X, _, err := channel.Merge(channel.FromSlices([][]float64{{0, 1, 2}, {0, 1}}), nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n)
	for i := 0; i < X.Rows(); i++ {
		row, _ := X.Row(i)
		fmt.Println(row)
	}
	// Output:
	// [3 2]
	// [0 0]
	// [0 1]
	// [0 2]
	// [1 0]
	// [1 1]
}

func ExampleIndices() {
	_, X, _, _ := channel.Merge(channel.FromSlices([][]float64{{5}, {6, 7}, {}}), nil)
	part, err := channel.Indices(X, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(part, part.Present())
	// Output:
	// [[0] [1 2] []] [0 1]
}
