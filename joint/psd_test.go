// SPDX-License-Identifier: MIT

package joint_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mogp/joint"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/stretchr/testify/require"
)

func TestMinEigenvalue(t *testing.T) {
	K, _ := matrix.FromRows([][]float64{{3, 0, 0}, {0, 1, 0}, {0, 0, 2}})
	lambda, err := joint.MinEigenvalue(K)
	require.NoError(t, err)
	require.InDelta(t, 1, lambda, 1e-12)

	ok, err := joint.IsPSD(K, 0)
	require.NoError(t, err)
	require.True(t, ok)

	neg, _ := matrix.FromRows([][]float64{{1, 2}, {2, 1}})
	ok, err = joint.IsPSD(neg, 1e-6)
	require.NoError(t, err)
	require.False(t, ok)

	empty, _ := matrix.NewDense(0, 0)
	lambda, err = joint.MinEigenvalue(empty)
	require.NoError(t, err)
	require.True(t, math.IsInf(lambda, 1))
}

func TestMinEigenvalueRejectsAsymmetry(t *testing.T) {
	K, _ := matrix.FromRows([][]float64{{1, 2}, {0, 1}})
	_, err := joint.MinEigenvalue(K)
	require.ErrorIs(t, err, joint.ErrNotSymmetric)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	rect, _ := matrix.NewDense(2, 3)
	_, err = joint.MinEigenvalue(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestCholeskyJitter(t *testing.T) {
	pd, _ := matrix.FromRows([][]float64{{2, 1}, {1, 2}})
	chol, jitter, err := joint.Cholesky(pd, 1e-8)
	require.NoError(t, err)
	require.Zero(t, jitter)
	require.InDelta(t, 3, chol.Det(), 1e-12)

	ones, _ := matrix.FromRows([][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	chol, jitter, err = joint.Cholesky(ones, 1e-8)
	require.NoError(t, err)
	require.Greater(t, jitter, 0.0)
	require.NotNil(t, chol)

	negative, _ := matrix.FromRows([][]float64{{-1, 0}, {0, -1}})
	_, _, err = joint.Cholesky(negative, 1e-6, joint.WithJitterAttempts(3))
	require.ErrorIs(t, err, joint.ErrNotPSD)

	require.Panics(t, func() { joint.WithJitterAttempts(0) })
}

func TestCholeskyRejectsNonPositiveJitter(t *testing.T) {
	ones, _ := matrix.FromRows([][]float64{{1, 1}, {1, 1}})
	for _, jitter := range []float64{0, -1e-6, math.NaN(), math.Inf(1)} {
		_, _, err := joint.Cholesky(ones, jitter)
		require.ErrorIs(t, err, joint.ErrJitter, "jitter %g", jitter)
	}

	rect, _ := matrix.NewDense(2, 3)
	_, _, err := joint.Cholesky(rect, 1e-6)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, err = joint.Cholesky(nil, 1e-6)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
