// SPDX-License-Identifier: MIT

package channel_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/mogp/channel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/stretchr/testify/require"
)

func rows(m *matrix.Dense) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i], _ = m.Row(i)
	}

	return out
}

// TestMergeTwoChannels is the reference two-channel scenario.
func TestMergeTwoChannels(t *testing.T) {
	n, X, Y, err := channel.Merge(channel.FromSlices([][]float64{{0, 1, 2}, {0, 1}}), nil)
	require.NoError(t, err)
	require.Nil(t, Y)
	require.Equal(t, []int{3, 2}, n)
	require.Equal(t, 5, X.Rows())
	require.Equal(t, 2, X.Cols())

	c0, _ := X.Col(0)
	c1, _ := X.Col(1)
	require.Equal(t, []float64{0, 0, 0, 1, 1}, c0)
	require.Equal(t, []float64{0, 1, 2, 0, 1}, c1)

	parts, err := channel.Split(n, X)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	require.Equal(t, [][]float64{{0, 0}, {0, 1}, {0, 2}}, rows(parts[0][0]))
	require.Equal(t, [][]float64{{1, 0}, {1, 1}}, rows(parts[0][1]))
}

func TestMergeWithOutputs(t *testing.T) {
	xs := channel.FromSlices([][]float64{{0.5}, {1.5, 2.5}})
	ys := channel.FromSlices([][]float64{{10}, {20, 30}})
	n, X, Y, err := channel.Merge(xs, ys)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, n)
	require.Equal(t, []float64{0, 0.5, 1, 1.5, 1, 2.5}, X.Data())
	require.Equal(t, []float64{10, 20, 30}, Y.Data())
}

func TestMergeErrors(t *testing.T) {
	one := channel.FromSlices([][]float64{{1, 2}})
	two := channel.FromSlices([][]float64{{1, 2}, {3}})

	_, _, _, err := channel.Merge(nil, nil)
	require.ErrorIs(t, err, channel.ErrInputShape)

	_, _, _, err = channel.Merge(two, one)
	require.ErrorIs(t, err, channel.ErrChannelCount)

	_, _, _, err = channel.Merge(one, channel.FromSlices([][]float64{{1}}))
	require.ErrorIs(t, err, channel.ErrRowCount)

	wide, _ := matrix.NewDense(1, 2)
	_, _, _, err = channel.Merge([]*matrix.Dense{one[0], wide}, nil)
	require.ErrorIs(t, err, channel.ErrInputShape)

	_, _, _, err = channel.Merge([]*matrix.Dense{nil}, nil)
	require.ErrorIs(t, err, channel.ErrInputShape)
}

func TestSplitErrors(t *testing.T) {
	X, _ := matrix.NewDense(4, 2)
	_, err := channel.Split([]int{3, 2}, X)
	require.ErrorIs(t, err, channel.ErrRowCount)

	_, err = channel.Split([]int{-1, 5}, X)
	require.ErrorIs(t, err, channel.ErrInputShape)

	_, err = channel.Split([]int{4}, X, nil)
	require.ErrorIs(t, err, channel.ErrInputShape)
}

// TestRoundTrip checks split(merge(split(X))) reproduces the segments for
// random partitions, including empty channels.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for trial := 0; trial < 20; trial++ {
		channels := 1 + rng.IntN(4)
		dims := 1 + rng.IntN(3)
		xs := make([]*matrix.Dense, channels)
		ys := make([]*matrix.Dense, channels)
		for i := range xs {
			rowsN := rng.IntN(5)
			xs[i], _ = matrix.NewDense(rowsN, dims)
			ys[i], _ = matrix.NewDense(rowsN, 1)
			for k := range xs[i].Data() {
				xs[i].Data()[k] = rng.NormFloat64()
			}
			for k := range ys[i].Data() {
				ys[i].Data()[k] = rng.NormFloat64()
			}
		}

		n, X, Y, err := channel.Merge(xs, ys)
		require.NoError(t, err)
		parts, err := channel.Split(n, X, Y)
		require.NoError(t, err)

		for i := range xs {
			inputs, err := channel.Inputs(parts[0][i])
			require.NoError(t, err)
			if diff := cmp.Diff(rows(xs[i]), rows(inputs)); diff != "" {
				t.Fatalf("trial %d channel %d inputs (-want +got):\n%s", trial, i, diff)
			}
			if diff := cmp.Diff(ys[i].Data(), parts[1][i].Data()); diff != "" {
				t.Fatalf("trial %d channel %d outputs (-want +got):\n%s", trial, i, diff)
			}
		}

		// merge(split) reproduces the stacked matrix bit for bit
		inputs := make([]*matrix.Dense, channels)
		for i := range inputs {
			inputs[i], _ = channel.Inputs(parts[0][i])
		}
		n2, X2, _, err := channel.Merge(inputs, nil)
		require.NoError(t, err)
		require.Equal(t, n, n2)
		require.Equal(t, X.Data(), X2.Data())
	}
}
