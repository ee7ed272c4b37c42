// SPDX-License-Identifier: MIT

package multioutput_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/mogp/kernel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/multioutput"
	"github.com/katalvlaran/mogp/parameter"
	"github.com/stretchr/testify/require"
)

func TestMixtureSumsComponents(t *testing.T) {
	mix, err := multioutput.Mixture(2, func(_ int, opts ...kernel.Option) (multioutput.Kernel, error) {
		return multioutput.NewMOSM(2, 1, opts...)
	})
	require.NoError(t, err)
	require.Equal(t, "Mixture", mix.Name())
	require.Len(t, mix.Parts(), 2)
	require.Len(t, mix.Parameters(), 10)

	X := inputs(rand.New(rand.NewPCG(1, 2)), 4, 1)
	got, err := mix.Ksub(0, 1, X, nil)
	require.NoError(t, err)
	a, _ := mix.Parts()[0].Ksub(0, 1, X, nil)
	b, _ := mix.Parts()[1].Ksub(0, 1, X, nil)
	want, _ := matrix.Add(a, b)
	ok, _ := matrix.AllClose(want, got, 0, 1e-15)
	require.True(t, ok)

	diag, err := mix.KsubDiag(1, X)
	require.NoError(t, err)
	da, _ := mix.Parts()[0].KsubDiag(1, X)
	db, _ := mix.Parts()[1].KsubDiag(1, X)
	for n := range diag {
		require.InDelta(t, da[n]+db[n], diag[n], 1e-15)
	}
}

func TestMixtureComponentsDiffer(t *testing.T) {
	mix, err := multioutput.Mixture(2, func(_ int, opts ...kernel.Option) (multioutput.Kernel, error) {
		return multioutput.NewCSM(2, 1, 1, opts...)
	})
	require.NoError(t, err)
	a := mix.Parts()[0].(*multioutput.CSM)
	b := mix.Parts()[1].(*multioutput.CSM)
	require.NotEqual(t, a.Mean().Value(), b.Mean().Value())
	require.Equal(t, "CSM.1", b.Name())

	_, err = multioutput.Mixture(2, func(int, ...kernel.Option) (multioutput.Kernel, error) {
		return multioutput.NewCSM(2, 1, 1, kernel.WithName("Shared"))
	})
	require.ErrorIs(t, err, parameter.ErrDuplicate)
}

func TestAddRejectsMismatch(t *testing.T) {
	a, _ := multioutput.NewMOSM(2, 1)
	b, _ := multioutput.NewMOSM(3, 1)
	_, err := multioutput.Add(a, b)
	require.ErrorIs(t, err, multioutput.ErrMismatch)

	_, err = multioutput.Add(a, nil)
	require.ErrorIs(t, err, multioutput.ErrNilKernel)

	_, err = multioutput.Mixture(0, nil)
	require.ErrorIs(t, err, multioutput.ErrOutputDims)
}

func TestAddFlattens(t *testing.T) {
	a, _ := multioutput.NewMOSM(2, 1, kernel.WithName("A"))
	b, _ := multioutput.NewCONV(2, 1, kernel.WithName("B"))
	c, _ := multioutput.NewCSM(2, 1, 1, kernel.WithName("C"))
	ab, err := multioutput.Add(a, b)
	require.NoError(t, err)
	abc, err := multioutput.Add(ab, c)
	require.NoError(t, err)
	require.Len(t, abc.Parts(), 3)
}
