// SPDX-License-Identifier: MIT

package parameter_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mogp/parameter"
	"github.com/stretchr/testify/require"
)

func TestNewShapeAndClamp(t *testing.T) {
	p, err := parameter.New([]float64{-1, 0.5, 3}, []int{3}, parameter.WithLower(0), parameter.WithUpper(2))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.5, 2}, p.Value())
	require.Equal(t, []int{3}, p.Shape())
	require.True(t, p.Trainable())

	_, err = parameter.New([]float64{1, 2, 3}, []int{2, 2})
	require.ErrorIs(t, err, parameter.ErrShape)

	_, err = parameter.New([]float64{1}, nil, parameter.WithLower(2), parameter.WithUpper(1))
	require.ErrorIs(t, err, parameter.ErrBounds)

	_, err = parameter.New([]float64{1, 2}, nil, parameter.WithLower(0, 0, 0))
	require.ErrorIs(t, err, parameter.ErrShape)
}

func TestAtAndRow(t *testing.T) {
	p, err := parameter.New([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3})
	require.NoError(t, err)
	require.Equal(t, 6.0, p.At(1, 2))
	require.Equal(t, 2.0, p.At(0, 1))
	require.Equal(t, []float64{4, 5, 6}, p.Row(1))
	require.Panics(t, func() { p.At(2, 0) })

	s, err := parameter.Scalar(2.5)
	require.NoError(t, err)
	require.Equal(t, 2.5, s.Scalar())
	require.Empty(t, s.Shape())
}

func TestValueIsACopy(t *testing.T) {
	p, _ := parameter.New([]float64{1, 2}, nil)
	v := p.Value()
	v[0] = 100
	require.Equal(t, []float64{1, 2}, p.Value())
}

func TestAssign(t *testing.T) {
	p, _ := parameter.Filled(1, []int{2, 2}, parameter.WithLower(1e-8))

	require.NoError(t, p.Assign([]float64{3}))
	require.Equal(t, []float64{3, 3, 3, 3}, p.Value())

	require.NoError(t, p.Assign([]float64{-5, 1, 2, 9}))
	require.Equal(t, []float64{1e-8, 1, 2, 9}, p.Value())

	require.NoError(t, p.Assign(nil, parameter.AssignUpper(4)))
	require.Equal(t, []float64{1e-8, 1, 2, 4}, p.Value())
	require.Equal(t, []float64{4, 4, 4, 4}, p.Upper())

	require.ErrorIs(t, p.Assign([]float64{1, 2}), parameter.ErrShape)
	require.ErrorIs(t, p.Assign(nil, parameter.AssignLower(5)), parameter.ErrBounds)
	require.Equal(t, []float64{1e-8, 1, 2, 4}, p.Value(), "failed Assign must not modify")

	require.NoError(t, p.Assign([]float64{10}, parameter.AssignUpper()))
	require.Nil(t, p.Upper())
	require.Equal(t, []float64{10, 10, 10, 10}, p.Value())
}

func TestUnconstrainedRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		opts []parameter.Option
		val  []float64
	}{
		{"free", nil, []float64{-3, 0, 4}},
		{"lower", []parameter.Option{parameter.WithLower(0.1)}, []float64{0.2, 1, 50}},
		{"upper", []parameter.Option{parameter.WithUpper(2)}, []float64{-7, 0, 1.9}},
		{"both", []parameter.Option{parameter.WithLower(-1), parameter.WithUpper(1)}, []float64{-0.9, 0, 0.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := parameter.New(tc.val, nil, tc.opts...)
			require.NoError(t, err)
			u := p.Unconstrained()
			for _, x := range u {
				require.False(t, math.IsNaN(x) || math.IsInf(x, 0))
			}
			require.NoError(t, p.SetUnconstrained(u))
			require.InDeltaSlice(t, tc.val, p.Value(), 1e-9)
		})
	}
}

func TestSetRegistry(t *testing.T) {
	s := parameter.NewSet("MOSM")
	p, _ := parameter.Scalar(1)
	require.NoError(t, s.Register("magnitude", p))
	require.Equal(t, "MOSM.magnitude", p.Name())

	q, _ := parameter.Scalar(2)
	require.ErrorIs(t, s.Register("magnitude", q), parameter.ErrDuplicate)
	require.ErrorIs(t, s.Register("mean", nil), parameter.ErrNil)

	got, ok := s.Get("magnitude")
	require.True(t, ok)
	require.Same(t, p, got)
	require.Len(t, s.All(), 1)
}

func TestFixed(t *testing.T) {
	p, _ := parameter.Scalar(1, parameter.Fixed(), parameter.WithName("dof"))
	require.False(t, p.Trainable())
	require.Contains(t, p.String(), "(fixed)")
	p.SetTrainable(true)
	require.True(t, p.Trainable())
}
