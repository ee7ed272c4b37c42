// SPDX-License-Identifier: MIT

package multioutput

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mogp/kernel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
	"gonum.org/v1/gonum/floats"
)

// CSM is the cross spectral mixture kernel: a single spectral Gaussian
// shared by all channels, mixed through Rq ranks of per-channel amplitudes
// and phase shifts.
type CSM struct {
	Base
	rank      int
	amplitude *parameter.Parameter // (out, Rq), > 0
	mean      *parameter.Parameter // (D), > 0
	variance  *parameter.Parameter // (D), > 0
	shift     *parameter.Parameter // (out, Rq)
}

// NewCSM builds a CSM kernel of rank Rq.
func NewCSM(outputDims, inputDims, rank int, opts ...kernel.Option) (*CSM, error) {
	b, err := NewBase("CSM", outputDims, inputDims, opts...)
	if err != nil {
		return nil, err
	}
	if rank < 1 {
		return nil, multioutputErrorf(b.Name(), fmt.Errorf("rank %d: %w", rank, ErrOutputDims))
	}
	k := &CSM{Base: b, rank: rank}
	rng := k.initRand()
	if k.amplitude, err = k.NewPositive("amplitude", uniform(rng, outputDims*rank), []int{outputDims, rank}); err != nil {
		return nil, err
	}
	if k.mean, err = k.NewPositive("mean", uniform(rng, inputDims), []int{inputDims}); err != nil {
		return nil, err
	}
	if k.variance, err = k.NewPositive("variance", uniform(rng, inputDims), []int{inputDims}); err != nil {
		return nil, err
	}
	if k.shift, err = k.NewParameter("shift", make([]float64, outputDims*rank), []int{outputDims, rank}); err != nil {
		return nil, err
	}

	return k, nil
}

// Rank returns Rq.
func (k *CSM) Rank() int { return k.rank }

// Amplitude holds the per-channel amplitudes (out, Rq).
func (k *CSM) Amplitude() *parameter.Parameter { return k.amplitude }

// Mean holds the shared spectral mean (D).
func (k *CSM) Mean() *parameter.Parameter { return k.mean }

// Variance holds the shared spectral variance (D).
func (k *CSM) Variance() *parameter.Parameter { return k.variance }

// Shift holds the per-channel phase shifts (out, Rq).
func (k *CSM) Shift() *parameter.Parameter { return k.shift }

// Ksub evaluates Σ_r √(a_ir a_jr)·exp(-½Στ²v)·cos(2π(τ·μ + s_ir - s_jr)).
func (k *CSM) Ksub(i, j int, X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	if err := k.CheckChannels(i, j); err != nil {
		return nil, err
	}
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	ai, aj := k.amplitude.Row(i), k.amplitude.Row(j)
	si, sj := k.shift.Row(i), k.shift.Row(j)
	weight := make([]float64, k.rank)
	shift := make([]float64, k.rank)
	for r := range weight {
		weight[r] = math.Sqrt(ai[r] * aj[r])
		shift[r] = si[r] - sj[r]
	}
	mean, variance := k.mean.Value(), k.variance.Value()

	return kernel.Pairwise(a1, a2, func(x, y []float64) float64 {
		var e, c float64
		for d := range x {
			t := x[d] - y[d]
			e += t * t * variance[d]
			c += t * mean[d]
		}
		env := math.Exp(-0.5 * e)
		var sum float64
		for r, w := range weight {
			sum += w * math.Cos(2*math.Pi*(c+shift[r]))
		}
		return env * sum
	}), nil
}

// KsubDiag is the constant Σ_r a_ir.
func (k *CSM) KsubDiag(i int, X1 *matrix.Dense) ([]float64, error) {
	if err := k.CheckChannels(i); err != nil {
		return nil, err
	}
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}
	return kernel.Filled(a1.Rows(), floats.Sum(k.amplitude.Row(i))), nil
}

// AssignNyquist bounds the shared mean by the smallest Nyquist frequency
// over the channels, per dimension.
func (k *CSM) AssignNyquist(nyquist [][]float64) error {
	upper, err := minOverChannels(&k.Base, nyquist)
	if err != nil {
		return err
	}
	if err = k.mean.Assign(nil, parameter.AssignUpper(upper...)); err != nil {
		return multioutputErrorf(k.Name(), err)
	}

	return nil
}

var (
	_ Kernel         = (*CSM)(nil)
	_ NyquistBounded = (*CSM)(nil)
)
