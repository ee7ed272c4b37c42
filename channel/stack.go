// SPDX-License-Identifier: MIT

package channel

import (
	"fmt"

	"github.com/katalvlaran/mogp/matrix"
)

const (
	opMerge = "Merge"
	opSplit = "Split"
)

// Merge stacks per-channel inputs xs[i] (Nᵢ×D) into one (ΣNᵢ)×(1+D) matrix
// whose column 0 holds the channel index i. When ys is non-nil it must hold
// one Nᵢ×1 output per channel; they are stacked into a (ΣNᵢ)×1 column.
//
// Returns the per-channel row counts n, the stacked inputs X and the stacked
// outputs Y (nil when ys is nil).
//
// Errors:
//   - ErrInputShape: empty channel list, nil channel, differing D across
//     channels, or an output with more than one column.
//   - ErrChannelCount: len(ys) != len(xs).
//   - ErrRowCount: ys[i].Rows() != xs[i].Rows().
func Merge(xs []*matrix.Dense, ys []*matrix.Dense) (n []int, X, Y *matrix.Dense, err error) {
	if len(xs) == 0 {
		return nil, nil, nil, channelErrorf(opMerge, ErrInputShape)
	}
	if ys != nil && len(ys) != len(xs) {
		return nil, nil, nil, channelErrorf(opMerge, ErrChannelCount)
	}

	dims := -1
	total := 0
	n = make([]int, len(xs))
	for i, x := range xs {
		if x == nil {
			return nil, nil, nil, channelErrorf(opMerge, fmt.Errorf("channel %d: %w", i, ErrInputShape))
		}
		if dims >= 0 && x.Cols() != dims {
			return nil, nil, nil, channelErrorf(opMerge, fmt.Errorf("channel %d has %d columns, want %d: %w", i, x.Cols(), dims, ErrInputShape))
		}
		dims = x.Cols()
		if ys != nil {
			y := ys[i]
			if y == nil || y.Cols() != 1 {
				return nil, nil, nil, channelErrorf(opMerge, fmt.Errorf("output %d: %w", i, ErrInputShape))
			}
			if y.Rows() != x.Rows() {
				return nil, nil, nil, channelErrorf(opMerge, fmt.Errorf("channel %d: %d inputs vs %d outputs: %w", i, x.Rows(), y.Rows(), ErrRowCount))
			}
		}
		n[i] = x.Rows()
		total += n[i]
	}

	X, err = matrix.NewDense(total, 1+dims)
	if err != nil {
		return nil, nil, nil, channelErrorf(opMerge, err)
	}
	if ys != nil {
		Y, _ = matrix.NewDense(total, 1)
	}
	row := 0
	for i, x := range xs {
		for a := 0; a < n[i]; a++ {
			dst := X.RawRow(row)
			dst[0] = float64(i)
			copy(dst[1:], x.RawRow(a))
			if Y != nil {
				Y.Data()[row] = ys[i].Data()[a]
			}
			row++
		}
	}

	return n, X, Y, nil
}

// Split slices every stacked matrix in ms into per-channel segments in the
// order encoded by n. out[k][i] is channel i's segment of ms[k].
//
// Errors:
//   - ErrInputShape: negative count or nil matrix.
//   - ErrRowCount: a matrix whose row count is not Σn.
func Split(n []int, ms ...*matrix.Dense) ([][]*matrix.Dense, error) {
	total := 0
	for i, c := range n {
		if c < 0 {
			return nil, channelErrorf(opSplit, fmt.Errorf("count %d: %w", i, ErrInputShape))
		}
		total += c
	}

	out := make([][]*matrix.Dense, len(ms))
	for k, m := range ms {
		if m == nil {
			return nil, channelErrorf(opSplit, fmt.Errorf("matrix %d: %w", k, ErrInputShape))
		}
		if m.Rows() != total {
			return nil, channelErrorf(opSplit, fmt.Errorf("matrix %d has %d rows, want %d: %w", k, m.Rows(), total, ErrRowCount))
		}
		segs := make([]*matrix.Dense, len(n))
		start := 0
		for i, c := range n {
			seg, err := matrix.NewDenseFrom(c, m.Cols(), m.Data()[start*m.Cols():(start+c)*m.Cols()])
			if err != nil {
				return nil, channelErrorf(opSplit, err)
			}
			segs[i] = seg
			start += c
		}
		out[k] = segs
	}

	return out, nil
}

// FromSlices wraps one-dimensional per-channel inputs as Nᵢ×1 matrices,
// ready for Merge.
func FromSlices(xs [][]float64) []*matrix.Dense {
	out := make([]*matrix.Dense, len(xs))
	for i, x := range xs {
		out[i] = matrix.NewColumn(x)
	}

	return out
}
