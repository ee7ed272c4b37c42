// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
)

// Spectral is one spectral mixture component:
//
//	σ² · exp(-2π² Σ_d τ_d² v_d) · cos(2π Σ_d τ_d μ_d),  τ = x - x'
//
// whose spectral density is a Gaussian with mean μ and variance v.
type Spectral struct {
	Base
	magnitude *parameter.Parameter // scalar, > 0
	mean      *parameter.Parameter // (D), > 0, upper bounded by Nyquist
	variance  *parameter.Parameter // (D), > 0
}

// NewSpectral builds a spectral component with random initial frequencies
// drawn from the config stream "<name>.init".
func NewSpectral(inputDims int, opts ...Option) (*Spectral, error) {
	b, err := NewBase("Spectral", inputDims, opts...)
	if err != nil {
		return nil, err
	}
	rng := b.Config().NewRand(b.Name() + ".init")
	mean := make([]float64, inputDims)
	variance := make([]float64, inputDims)
	for d := range mean {
		mean[d] = rng.Float64()
		variance[d] = rng.Float64()
	}

	k := &Spectral{Base: b}
	if k.magnitude, err = k.NewPositive("magnitude", []float64{1}, []int{}); err != nil {
		return nil, err
	}
	if k.mean, err = k.NewPositive("mean", mean, []int{inputDims}); err != nil {
		return nil, err
	}
	if k.variance, err = k.NewPositive("variance", variance, []int{inputDims}); err != nil {
		return nil, err
	}

	return k, nil
}

// Magnitude is the component weight.
func (k *Spectral) Magnitude() *parameter.Parameter { return k.magnitude }

// MeanParameter is the spectral mean (frequency), one per dimension.
func (k *Spectral) MeanParameter() *parameter.Parameter { return k.mean }

// Variance is the spectral variance, one per dimension.
func (k *Spectral) Variance() *parameter.Parameter { return k.variance }

// K evaluates the covariance block.
func (k *Spectral) K(X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	mag, mu, v := k.magnitude.Scalar(), k.mean.Value(), k.variance.Value()
	twoPi2 := 2 * math.Pi * math.Pi

	return Pairwise(a1, a2, func(x, y []float64) float64 {
		var e, c float64
		for d := range x {
			tau := x[d] - y[d]
			e += tau * tau * v[d]
			c += tau * mu[d]
		}
		return mag * math.Exp(-twoPi2*e) * math.Cos(2*math.Pi*c)
	}), nil
}

// KDiag is the constant magnitude.
func (k *Spectral) KDiag(X1 *matrix.Dense) ([]float64, error) {
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}

	return Filled(a1.Rows(), k.magnitude.Scalar()), nil
}

var (
	_ Kernel       = (*Spectral)(nil)
	_ SpectralMean = (*Spectral)(nil)
)
