// SPDX-License-Identifier: MIT

package multioutput

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mogp/kernel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
)

// MOHSM is the multi-output harmonizable spectral mixture kernel. It
// extends MOSM with a per-channel lengthscale ℓ and a shared center c that
// modulate the covariance by the midpoint of the two inputs, making it
// non-stationary:
//
//	exp(-½ ℓ² Σ ((x+x')/2 - c)²).
//
// The joint covariance is positive semi-definite only inside the region
// ValidatePSD checks; outside it, joint.Cholesky may need large jitter or
// fail.
type MOHSM struct {
	Base
	spectralParams
	magnitude   *parameter.Parameter // (out), > 0
	lengthscale *parameter.Parameter // (out), > 0
	center      *parameter.Parameter // (D)
	twoPi       float64              // (2π)^D
}

// NewMOHSM builds a MOHSM kernel.
func NewMOHSM(outputDims, inputDims int, opts ...kernel.Option) (*MOHSM, error) {
	b, err := NewBase("MOHSM", outputDims, inputDims, opts...)
	if err != nil {
		return nil, err
	}
	k := &MOHSM{Base: b, twoPi: math.Pow(2*math.Pi, float64(inputDims))}
	rng := k.initRand()
	if k.magnitude, err = k.NewPositive("magnitude", uniform(rng, outputDims), []int{outputDims}); err != nil {
		return nil, err
	}
	if k.spectralParams, err = newSpectralParams(&k.Base, rng); err != nil {
		return nil, err
	}
	if k.lengthscale, err = k.NewPositive("lengthscale", uniform(rng, outputDims), []int{outputDims}); err != nil {
		return nil, err
	}
	if k.center, err = k.NewParameter("center", make([]float64, inputDims), []int{inputDims}); err != nil {
		return nil, err
	}

	return k, nil
}

// Magnitude holds one magnitude per channel.
func (k *MOHSM) Magnitude() *parameter.Parameter { return k.magnitude }

// Mean holds the spectral means (out, D).
func (k *MOHSM) Mean() *parameter.Parameter { return k.mean }

// Variance holds the spectral variances (out, D).
func (k *MOHSM) Variance() *parameter.Parameter { return k.variance }

// Lengthscale holds one lengthscale per channel.
func (k *MOHSM) Lengthscale() *parameter.Parameter { return k.lengthscale }

// Center holds the shared center (D).
func (k *MOHSM) Center() *parameter.Parameter { return k.center }

// Delay holds per-channel delays (out, D); nil for a single channel.
func (k *MOHSM) Delay() *parameter.Parameter { return k.delay }

// Phase holds per-channel phases (out); nil for a single channel.
func (k *MOHSM) Phase() *parameter.Parameter { return k.phase }

// Ksub evaluates the (i, j) block.
func (k *MOHSM) Ksub(i, j int, X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	if err := k.CheckChannels(i, j); err != nil {
		return nil, err
	}
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	D := k.InputDims()
	ls := k.lengthscale.Value()
	mag := k.magnitude.Value()
	center := k.center.Value()

	var (
		alpha, L, phase       float64
		mean, variance, delta []float64
	)
	if i == j {
		L = ls[i] * ls[i]
		mean, variance, delta = k.mean.Row(i), k.variance.Row(i), make([]float64, D)
		alpha = mag[i] * mag[i]
	} else {
		Li, Lj := ls[i]*ls[i], ls[j]*ls[j]
		L = 2 * Li * Lj / (Li + Lj)
		var atten float64
		atten, mean, variance = crossSpectral(k.mean.Row(i), k.variance.Row(i), k.mean.Row(j), k.variance.Row(j))
		delta, phase = k.delayPhase(i, j, D)
		alpha = mag[i] * mag[j] * atten
	}
	alpha *= k.twoPi * sqrtProd(variance) * math.Pow(math.Sqrt(L), float64(D))

	return kernel.Pairwise(a1, a2, func(x, y []float64) float64 {
		var e, c, h float64
		for d := range x {
			t := x[d] - y[d] + delta[d]
			e += t * t * variance[d]
			c += t * mean[d]
			m := 0.5*(x[d]+y[d]) - center[d]
			h += m * m
		}
		return alpha * math.Exp(-0.5*e) * math.Cos(2*math.Pi*c+phase) * math.Exp(-0.5*L*h)
	}), nil
}

// KsubDiag evaluates alpha_i · exp(-½ ℓ_i² Σ (x-c)²).
func (k *MOHSM) KsubDiag(i int, X1 *matrix.Dense) ([]float64, error) {
	if err := k.CheckChannels(i); err != nil {
		return nil, err
	}
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}
	l := k.lengthscale.Value()[i]
	L := l * l
	m := k.magnitude.Value()[i]
	alpha := m * m * k.twoPi * sqrtProd(k.variance.Row(i)) * math.Pow(l, float64(k.InputDims()))
	center := k.center.Value()
	out := make([]float64, a1.Rows())
	for n := range out {
		var h float64
		for d, x := range a1.RawRow(n) {
			h += (x - center[d]) * (x - center[d])
		}
		out[n] = alpha * math.Exp(-0.5*L*h)
	}

	return out, nil
}

// ValidatePSD reports ErrIndefinite unless the parameters lie in the region
// where every joint covariance of k is positive semi-definite:
//
//   - variance[i][d] ≥ ℓ_i²/4 for every channel and dimension. Around the
//     center the exponent splits into -½(v+ℓ²/4)(u²+u'²) + (v-ℓ²/4)·u·u',
//     and exp(b·u·u') is a kernel only for b ≥ 0.
//   - With several channels, mean, variance, lengthscale and delay agree
//     across channels (within the configured epsilon). Magnitudes and
//     phases stay free: they enter as the rank-one factor m_i m_j e^{i(φ_i-φ_j)}.
func (k *MOHSM) ValidatePSD() error {
	eps := k.Config().Epsilon()
	ls := k.lengthscale.Value()
	for i := 0; i < k.OutputDims(); i++ {
		floor := ls[i] * ls[i] / 4
		for d, v := range k.variance.Row(i) {
			if v < floor-eps {
				return multioutputErrorf(k.Name(), fmt.Errorf("variance[%d][%d] = %g below lengthscale²/4 = %g: %w", i, d, v, floor, ErrIndefinite))
			}
		}
	}
	if k.OutputDims() == 1 {
		return nil
	}
	shared := []*parameter.Parameter{k.mean, k.variance, k.lengthscale, k.delay}
	for _, p := range shared {
		ok, err := rowsAgree(p, k.OutputDims(), eps)
		if err != nil {
			return multioutputErrorf(k.Name(), err)
		}
		if !ok {
			return multioutputErrorf(k.Name(), fmt.Errorf("%s differs between channels: %w", p.Name(), ErrIndefinite))
		}
	}

	return nil
}

// rowsAgree reports whether every channel row of p equals row 0 within eps.
func rowsAgree(p *parameter.Parameter, rows int, eps float64) (bool, error) {
	v := p.Value()
	M, err := matrix.NewDenseFrom(rows, len(v)/rows, v)
	if err != nil {
		return false, err
	}
	first, err := M.Induced([]int{0}, nil)
	if err != nil {
		return false, err
	}
	for i := 1; i < rows; i++ {
		row, err := M.Induced([]int{i}, nil)
		if err != nil {
			return false, err
		}
		if ok, err := matrix.AllClose(row, first, eps, eps); err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}

// AssignNyquist sets the upper bound of mean[i] to nyquist[i].
func (k *MOHSM) AssignNyquist(nyquist [][]float64) error {
	return assignMeanUpper(&k.Base, k.mean, nyquist)
}

var (
	_ Kernel         = (*MOHSM)(nil)
	_ NyquistBounded = (*MOHSM)(nil)
)
