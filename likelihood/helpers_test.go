// SPDX-License-Identifier: MIT

package likelihood_test

import (
	"testing"

	"github.com/katalvlaran/mogp/matrix"
	"github.com/stretchr/testify/require"
)

// column builds an N×1 latent matrix.
func column(v ...float64) *matrix.Dense { return matrix.NewColumn(v) }

// augmented builds a channel-augmented input with one input column.
func augmented(t *testing.T, tags []float64) *matrix.Dense {
	t.Helper()
	data := make([]float64, 0, 2*len(tags))
	for n, c := range tags {
		data = append(data, c, float64(n))
	}
	X, err := matrix.NewDenseFrom(len(tags), 2, data)
	require.NoError(t, err)

	return X
}

func col0(t *testing.T, m *matrix.Dense) []float64 {
	t.Helper()
	c, err := m.Col(0)
	require.NoError(t, err)

	return c
}
