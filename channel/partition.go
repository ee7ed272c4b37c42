// SPDX-License-Identifier: MIT

package channel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mogp/matrix"
)

// Partition holds, per channel, the row indices of a channel-augmented
// matrix that belong to it, in their original order. Index sets are
// disjoint, so per-channel writes through them never overlap.
type Partition [][]int

// Indices partitions the rows of X by the integer channel tag in column 0.
// Channels without rows yield an empty (non-nil) set.
//
// Errors:
//   - ErrInputShape when X is nil or has no columns.
//   - ErrChannelIndex when a tag is not an integer in [0, outputDims).
//
// Complexity: O(rows), one pass.
func Indices(X *matrix.Dense, outputDims int) (Partition, error) {
	if X == nil || X.Cols() == 0 || outputDims < 1 {
		return nil, channelErrorf("Indices", ErrInputShape)
	}
	counts := make([]int, outputDims)
	tags := make([]int, X.Rows())
	for r := 0; r < X.Rows(); r++ {
		c, err := tag(X.RawRow(r)[0], outputDims)
		if err != nil {
			return nil, channelErrorf("Indices", fmt.Errorf("row %d: %w", r, err))
		}
		tags[r] = c
		counts[c]++
	}
	p := make(Partition, outputDims)
	for c := range p {
		p[c] = make([]int, 0, counts[c])
	}
	for r, c := range tags {
		p[c] = append(p[c], r)
	}

	return p, nil
}

// Tags returns the channel index of every row of X.
func Tags(X *matrix.Dense, outputDims int) ([]int, error) {
	if X == nil || X.Cols() == 0 || outputDims < 1 {
		return nil, channelErrorf("Tags", ErrInputShape)
	}
	out := make([]int, X.Rows())
	for r := range out {
		c, err := tag(X.RawRow(r)[0], outputDims)
		if err != nil {
			return nil, channelErrorf("Tags", fmt.Errorf("row %d: %w", r, err))
		}
		out[r] = c
	}

	return out, nil
}

func tag(v float64, outputDims int) (int, error) {
	if v != math.Trunc(v) || v < 0 || v >= float64(outputDims) {
		return 0, fmt.Errorf("tag %g: %w", v, ErrChannelIndex)
	}

	return int(v), nil
}

// Present lists the channels that own at least one row, ascending.
func (p Partition) Present() []int {
	var out []int
	for c, rows := range p {
		if len(rows) > 0 {
			out = append(out, c)
		}
	}

	return out
}

// Inputs strips the channel column from a channel-augmented matrix.
func Inputs(X *matrix.Dense) (*matrix.Dense, error) {
	if X == nil || X.Cols() == 0 {
		return nil, channelErrorf("Inputs", ErrInputShape)
	}
	cols := make([]int, X.Cols()-1)
	for j := range cols {
		cols[j] = j + 1
	}

	return X.Induced(nil, cols)
}

// GatherVec returns v[idx[0]], v[idx[1]], ...
func GatherVec(v []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for a, i := range idx {
		out[a] = v[i]
	}

	return out
}

// ScatterVec writes src[a] into dst[idx[a]].
func ScatterVec(dst []float64, idx []int, src []float64) {
	for a, i := range idx {
		dst[i] = src[a]
	}
}
