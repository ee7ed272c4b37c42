// SPDX-License-Identifier: MIT

package channel_test

import (
	"testing"

	"github.com/katalvlaran/mogp/channel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/stretchr/testify/require"
)

func TestIndicesInterleaved(t *testing.T) {
	X, _ := matrix.FromRows([][]float64{{1, 0}, {0, 1}, {2, 2}, {0, 3}, {1, 4}})
	p, err := channel.Indices(X, 4)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, p[0])
	require.Equal(t, []int{0, 4}, p[1])
	require.Equal(t, []int{2}, p[2])
	require.NotNil(t, p[3])
	require.Empty(t, p[3])
	require.Equal(t, []int{0, 1, 2}, p.Present())

	tags, err := channel.Tags(X, 4)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 2, 0, 1}, tags)
}

func TestIndicesRejectsBadTags(t *testing.T) {
	for _, bad := range []float64{-1, 0.5, 2} {
		X, _ := matrix.FromRows([][]float64{{0, 0}, {bad, 1}})
		_, err := channel.Indices(X, 2)
		require.ErrorIs(t, err, channel.ErrChannelIndex, "tag %g", bad)
	}
	_, err := channel.Indices(nil, 2)
	require.ErrorIs(t, err, channel.ErrInputShape)
}

func TestGatherScatterVec(t *testing.T) {
	v := []float64{10, 11, 12, 13}
	idx := []int{3, 1}
	g := channel.GatherVec(v, idx)
	require.Equal(t, []float64{13, 11}, g)

	dst := make([]float64, 4)
	channel.ScatterVec(dst, idx, g)
	require.Equal(t, []float64{0, 11, 0, 13}, dst)
}

func TestInputsStripsChannelColumn(t *testing.T) {
	X, _ := matrix.FromRows([][]float64{{0, 1, 2}, {1, 3, 4}})
	in, err := channel.Inputs(X)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, in.Data())
}
