// SPDX-License-Identifier: MIT

package multioutput

import (
	"math"

	"github.com/katalvlaran/mogp/kernel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
)

// CONV is the convolution kernel: every channel is a shared Gaussian
// latent process smoothed by a channel-specific Gaussian filter, giving
//
//	w_i w_j √(∏b / ∏(v_i+v_j+b)) · exp(-½ Σ τ²/(v_i+v_j+b)).
type CONV struct {
	Base
	weight       *parameter.Parameter // (out), > 0
	variance     *parameter.Parameter // (out, D), ≥ 0
	baseVariance *parameter.Parameter // (D), > 0
}

// NewCONV builds a convolution kernel.
func NewCONV(outputDims, inputDims int, opts ...kernel.Option) (*CONV, error) {
	b, err := NewBase("CONV", outputDims, inputDims, opts...)
	if err != nil {
		return nil, err
	}
	k := &CONV{Base: b}
	rng := k.initRand()
	if k.weight, err = k.NewPositive("weight", uniform(rng, outputDims), []int{outputDims}); err != nil {
		return nil, err
	}
	if k.variance, err = k.NewParameter("variance", uniform(rng, outputDims*inputDims), []int{outputDims, inputDims},
		parameter.WithLower(0)); err != nil {
		return nil, err
	}
	if k.baseVariance, err = k.NewPositive("base_variance", uniform(rng, inputDims), []int{inputDims}); err != nil {
		return nil, err
	}

	return k, nil
}

// Weight holds the per-channel weights.
func (k *CONV) Weight() *parameter.Parameter { return k.weight }

// Variance holds the per-channel filter variances (out, D).
func (k *CONV) Variance() *parameter.Parameter { return k.variance }

// BaseVariance holds the latent process variance (D).
func (k *CONV) BaseVariance() *parameter.Parameter { return k.baseVariance }

// scale returns w_i w_j √(∏b/∏vars) and vars = v_i + v_j + b.
func (k *CONV) scale(i, j int) (float64, []float64) {
	w := k.weight.Value()
	vi, vj, b := k.variance.Row(i), k.variance.Row(j), k.baseVariance.Value()
	vars := make([]float64, len(b))
	ratio := 1.0
	for d := range b {
		vars[d] = vi[d] + vj[d] + b[d]
		ratio *= b[d] / vars[d]
	}

	return w[i] * w[j] * math.Sqrt(ratio), vars
}

// Ksub evaluates the (i, j) block.
func (k *CONV) Ksub(i, j int, X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	if err := k.CheckChannels(i, j); err != nil {
		return nil, err
	}
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	alpha, vars := k.scale(i, j)

	return kernel.Pairwise(a1, a2, func(x, y []float64) float64 {
		var e float64
		for d := range x {
			t := x[d] - y[d]
			e += t * t / vars[d]
		}
		return alpha * math.Exp(-0.5*e)
	}), nil
}

// KsubDiag is the constant w_i² √(∏b/∏(2v_i+b)).
func (k *CONV) KsubDiag(i int, X1 *matrix.Dense) ([]float64, error) {
	if err := k.CheckChannels(i); err != nil {
		return nil, err
	}
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}
	alpha, _ := k.scale(i, i)

	return kernel.Filled(a1.Rows(), alpha), nil
}

var _ Kernel = (*CONV)(nil)
