package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mogp/matrix"
	"github.com/stretchr/testify/require"
)

func TestAllClose(t *testing.T) {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{1, 2 + 1e-10}, {3, 4}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	nan, _ := matrix.FromRows([][]float64{{math.NaN(), 2}, {3, 4}})
	ok, err = matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok, "NaN never compares close")

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestApply(t *testing.T) {
	a, _ := matrix.FromRows([][]float64{{0, 1}})
	e, err := matrix.Apply(a, math.Exp)
	require.NoError(t, err)
	require.Equal(t, []float64{1, math.E}, e.Data())
}
