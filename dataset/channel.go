// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/mogp/channel"
	"github.com/katalvlaran/mogp/matrix"
)

// Channel is one output stream: row n of X is observed as Y[n].
type Channel struct {
	X *matrix.Dense
	Y []float64
}

// NewChannel pairs inputs with outputs. X is copied and must be finite
// (matrix.ErrNaNInf otherwise); Y may hold NaN.
func NewChannel(X *matrix.Dense, Y []float64) (Channel, error) {
	ch := Channel{X: X, Y: Y}
	if err := ch.validate(); err != nil {
		return Channel{}, datasetErrorf("NewChannel", err)
	}
	cp, err := matrix.NewDenseFrom(X.Rows(), X.Cols(), X.Data(), matrix.WithValidateNaNInf())
	if err != nil {
		return Channel{}, datasetErrorf("NewChannel", err)
	}
	ch.X = cp

	return ch, nil
}

// FromSlice builds a one-dimensional channel.
func FromSlice(x, y []float64) (Channel, error) {
	return NewChannel(matrix.NewColumn(x), y)
}

// FromRows builds a channel with one input row per observation.
func FromRows(x [][]float64, y []float64) (Channel, error) {
	X, err := matrix.FromRows(x)
	if err != nil {
		return Channel{}, datasetErrorf("FromRows", err)
	}

	return NewChannel(X, y)
}

func (c Channel) validate() error {
	if c.X == nil {
		return ErrShape
	}
	if c.X.Rows() != len(c.Y) {
		return fmt.Errorf("%d inputs vs %d outputs: %w", c.X.Rows(), len(c.Y), ErrShape)
	}

	return nil
}

// Len is the number of observations.
func (c Channel) Len() int { return len(c.Y) }

// InputDims is the number of input columns.
func (c Channel) InputDims() int { return c.X.Cols() }

// Stack merges channels into a channel-augmented input and the matching
// output column, in channel order. n holds the per-channel row counts for
// channel.Split.
func Stack(chs []Channel) (n []int, X, Y *matrix.Dense, err error) {
	if len(chs) == 0 {
		return nil, nil, nil, datasetErrorf("Stack", ErrEmpty)
	}
	xs := make([]*matrix.Dense, len(chs))
	ys := make([]*matrix.Dense, len(chs))
	for i, ch := range chs {
		if err = ch.validate(); err != nil {
			return nil, nil, nil, datasetErrorf("Stack", fmt.Errorf("channel %d: %w", i, err))
		}
		xs[i], ys[i] = ch.X, matrix.NewColumn(ch.Y)
	}
	if n, X, Y, err = channel.Merge(xs, ys); err != nil {
		return nil, nil, nil, datasetErrorf("Stack", err)
	}

	return n, X, Y, nil
}
