// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"sort"
)

// NyquistEstimation returns, per input dimension, 0.5 divided by the
// smallest positive distance between two inputs along that dimension.
//
// Errors:
//   - ErrShape for a malformed channel.
//   - ErrSpacing when a dimension has fewer than two distinct values.
//
// Complexity: O(D·N log N).
func NyquistEstimation(ch Channel) ([]float64, error) {
	if err := ch.validate(); err != nil {
		return nil, datasetErrorf("NyquistEstimation", err)
	}
	out := make([]float64, ch.InputDims())
	for d := range out {
		col, _ := ch.X.Col(d)
		gap, err := minSpacing(col)
		if err != nil {
			return nil, datasetErrorf("NyquistEstimation", fmt.Errorf("dim %d: %w", d, err))
		}
		out[d] = 0.5 / gap
	}

	return out, nil
}

// Nyquist estimates every channel; row i belongs to channel i.
func Nyquist(chs []Channel) ([][]float64, error) {
	if len(chs) == 0 {
		return nil, datasetErrorf("Nyquist", ErrEmpty)
	}
	out := make([][]float64, len(chs))
	for i, ch := range chs {
		nyq, err := NyquistEstimation(ch)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		out[i] = nyq
	}

	return out, nil
}

// minSpacing sorts x in place and returns its smallest positive gap.
func minSpacing(x []float64) (float64, error) {
	sort.Float64s(x)
	gap := math.Inf(1)
	for k := 1; k < len(x); k++ {
		if d := x[k] - x[k-1]; d > 0 && d < gap {
			gap = d
		}
	}
	if math.IsInf(gap, 1) {
		return 0, ErrSpacing
	}

	return gap, nil
}
