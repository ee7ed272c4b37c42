package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mogp/matrix"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestAddHadamard(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 8, 10, 12}, sum.Data())

	prod, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 12, 21, 32}, prod.Data())

	_, err = matrix.Add(a, mustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulTransposeScale(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.Data())

	g, err := matrix.Mul(a, at)
	require.NoError(t, err)
	require.Equal(t, []float64{14, 32, 32, 77}, g.Data())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -4, -6, -8, -10, -12}, s.Data())
}

func TestMulEmptyInner(t *testing.T) {
	a, _ := matrix.NewDense(2, 0)
	b, _ := matrix.NewDense(0, 3)
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, make([]float64, 6), c.Data())
}
