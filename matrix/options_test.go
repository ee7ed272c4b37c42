package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mogp/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNaNInf(t *testing.T) {
	m, _ := matrix.NewDense(1, 1)
	require.NoError(t, m.Set(0, 0, math.NaN()))

	ok, err := matrix.NewDenseFrom(1, 2, []float64{1, 2}, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, ok.Set(0, 1, math.NaN()), matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom(1, 1, []float64{math.Inf(-1)}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
