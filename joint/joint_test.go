// SPDX-License-Identifier: MIT

package joint_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/mogp/channel"
	"github.com/katalvlaran/mogp/joint"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/multioutput"
	"github.com/stretchr/testify/require"
)

func mosm(t *testing.T, out int) *multioutput.MOSM {
	t.Helper()
	k, err := multioutput.NewMOSM(out, 1)
	require.NoError(t, err)
	require.NoError(t, k.Delay().Assign([]float64{0.1, -0.2, 0.3}[:out]))
	require.NoError(t, k.Phase().Assign([]float64{0.4, 0, -0.1}[:out]))

	return k
}

func augmented(rng *rand.Rand, out, n int) *matrix.Dense {
	X, _ := matrix.NewDense(n, 2)
	for r := 0; r < n; r++ {
		X.RawRow(r)[0] = float64(rng.IntN(out))
		X.RawRow(r)[1] = 3 * rng.Float64()
	}

	return X
}

func TestKMatchesBlocks(t *testing.T) {
	k := mosm(t, 2)
	xs := channel.FromSlices([][]float64{{0, 1, 2}, {0.5, 1.5}})
	_, X, _, err := channel.Merge(xs, nil)
	require.NoError(t, err)

	K, err := joint.K(k, X, nil)
	require.NoError(t, err)
	require.Equal(t, 5, K.Rows())

	K01, err := k.Ksub(0, 1, xs[0], xs[1])
	require.NoError(t, err)
	got, err := K.Induced([]int{0, 1, 2}, []int{3, 4})
	require.NoError(t, err)
	require.Equal(t, K01.Data(), got.Data())
}

func TestKRowOrderIsFree(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	k := mosm(t, 3)
	X := augmented(rng, 3, 10)
	K, err := joint.K(k, X, nil)
	require.NoError(t, err)

	perm := rng.Perm(10)
	Xp, _ := X.Induced(perm, nil)
	Kp, err := joint.K(k, Xp, nil)
	require.NoError(t, err)
	want, _ := K.Induced(perm, perm)
	require.Equal(t, want.Data(), Kp.Data())
}

func TestKWorkersAreBitIdentical(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	k := mosm(t, 3)
	X1, X2 := augmented(rng, 3, 20), augmented(rng, 3, 7)

	serial, err := joint.K(k, X1, X2)
	require.NoError(t, err)
	for _, w := range []int{2, 3, 16} {
		par, err := joint.K(k, X1, X2, joint.WithWorkers(w))
		require.NoError(t, err)
		require.Equal(t, serial.Data(), par.Data(), "workers=%d", w)
	}
}

func TestKAbsentChannel(t *testing.T) {
	k := mosm(t, 3)
	X, _ := matrix.FromRows([][]float64{{2, 0.1}, {0, 0.7}, {2, 1.3}})
	K, err := joint.K(k, X, nil)
	require.NoError(t, err)
	require.Equal(t, 3, K.Rows())

	empty, _ := matrix.NewDense(0, 2)
	K, err = joint.K(k, empty, X)
	require.NoError(t, err)
	require.Equal(t, 0, K.Rows())
	require.Equal(t, 3, K.Cols())
}

func TestKErrors(t *testing.T) {
	k := mosm(t, 2)
	_, err := joint.K(nil, nil, nil)
	require.ErrorIs(t, err, joint.ErrNilKernel)

	bad, _ := matrix.FromRows([][]float64{{2, 0}})
	_, err = joint.K(k, bad, nil)
	require.ErrorIs(t, err, channel.ErrChannelIndex)

	frac, _ := matrix.FromRows([][]float64{{0.5, 0}})
	_, err = joint.KDiag(k, frac)
	require.ErrorIs(t, err, channel.ErrChannelIndex)

	require.Panics(t, func() { joint.WithWorkers(0) })
}

func TestKDiagMatchesK(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))
	k := mosm(t, 3)
	X := augmented(rng, 3, 9)
	K, err := joint.K(k, X, nil)
	require.NoError(t, err)
	want := diagonal(K)
	got, err := joint.KDiag(k, X)
	require.NoError(t, err)
	require.InDeltaSlice(t, want, got, 1e-12)
}

func diagonal(K *matrix.Dense) []float64 {
	d := make([]float64, K.Rows())
	for i := range d {
		d[i] = K.RawRow(i)[i]
	}

	return d
}
