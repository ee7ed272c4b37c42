// SPDX-License-Identifier: MIT

package multioutput

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/mogp/kernel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
	"gonum.org/v1/gonum/floats"
)

// spectralParams are the per-channel spectral parameters shared by MOSM,
// UMOSM and MOHSM.
type spectralParams struct {
	mean     *parameter.Parameter // (out, D), > 0
	variance *parameter.Parameter // (out, D), > 0
	delay    *parameter.Parameter // (out, D), nil when out == 1
	phase    *parameter.Parameter // (out), nil when out == 1
}

func newSpectralParams(b *Base, rng *rand.Rand) (spectralParams, error) {
	out, D := b.OutputDims(), b.InputDims()
	var (
		s   spectralParams
		err error
	)
	if s.mean, err = b.NewPositive("mean", uniform(rng, out*D), []int{out, D}); err != nil {
		return s, err
	}
	if s.variance, err = b.NewPositive("variance", uniform(rng, out*D), []int{out, D}); err != nil {
		return s, err
	}
	if out > 1 {
		if s.delay, err = b.NewParameter("delay", make([]float64, out*D), []int{out, D}); err != nil {
			return s, err
		}
		if s.phase, err = b.NewParameter("phase", make([]float64, out), []int{out}); err != nil {
			return s, err
		}
	}

	return s, nil
}

// delayPhase returns δ = delay_i - delay_j and φ = phase_i - phase_j
// (zero for a single channel).
func (s *spectralParams) delayPhase(i, j, D int) ([]float64, float64) {
	delta := make([]float64, D)
	if s.delay == nil {
		return delta, 0
	}
	di, dj := s.delay.Row(i), s.delay.Row(j)
	for d := range delta {
		delta[d] = di[d] - dj[d]
	}
	pv := s.phase.Value()

	return delta, pv[i] - pv[j]
}

// crossSpectral combines two channels' spectral Gaussians: the product of
// the densities N(μ_i, v_i)·N(μ_j, v_j) up to the returned attenuation
// exp(-π² Σ_d Δμ_d²/(v_i+v_j)_d).
func crossSpectral(mi, vi, mj, vj []float64) (atten float64, mean, variance []float64) {
	D := len(mi)
	mean, variance = make([]float64, D), make([]float64, D)
	var q float64
	for d := 0; d < D; d++ {
		inv := 1 / (vi[d] + vj[d])
		dm := mi[d] - mj[d]
		q += dm * inv * dm
		mean[d] = inv * (vi[d]*mj[d] + vj[d]*mi[d])
		variance[d] = 2 * vi[d] * inv * vj[d]
	}

	return math.Exp(-math.Pi * math.Pi * q), mean, variance
}

// spectralBlock evaluates alpha·exp(-½Σ(τ+δ)²v)·cos(2π(τ+δ)·μ + φ) with
// τ = x - x'.
func spectralBlock(X1, X2 *matrix.Dense, alpha float64, mean, variance, delta []float64, phase float64) *matrix.Dense {
	return kernel.Pairwise(X1, X2, func(x, y []float64) float64 {
		var e, c float64
		for d := range x {
			t := x[d] - y[d] + delta[d]
			e += t * t * variance[d]
			c += t * mean[d]
		}
		return alpha * math.Exp(-0.5*e) * math.Cos(2*math.Pi*c+phase)
	})
}

func sqrtProd(v []float64) float64 { return math.Sqrt(floats.Prod(v)) }

// MOSM is the multi-output spectral mixture kernel. Channel i carries a
// magnitude, a spectral mean and variance, and (with several channels) a
// delay and a phase; cross-channel blocks follow from the product of the
// channels' spectral densities.
type MOSM struct {
	Base
	spectralParams
	magnitude *parameter.Parameter // (out), > 0
	twoPi     float64              // (2π)^(D/2)
}

// NewMOSM builds a MOSM kernel with random initial magnitudes, means and variances.
func NewMOSM(outputDims, inputDims int, opts ...kernel.Option) (*MOSM, error) {
	b, err := NewBase("MOSM", outputDims, inputDims, opts...)
	if err != nil {
		return nil, err
	}
	k := &MOSM{Base: b, twoPi: math.Pow(2*math.Pi, float64(inputDims)/2)}
	rng := k.initRand()
	if k.magnitude, err = k.NewPositive("magnitude", uniform(rng, outputDims), []int{outputDims}); err != nil {
		return nil, err
	}
	if k.spectralParams, err = newSpectralParams(&k.Base, rng); err != nil {
		return nil, err
	}

	return k, nil
}

// Magnitude holds one magnitude per channel.
func (k *MOSM) Magnitude() *parameter.Parameter { return k.magnitude }

// Mean holds the spectral means (out, D).
func (k *MOSM) Mean() *parameter.Parameter { return k.mean }

// Variance holds the spectral variances (out, D).
func (k *MOSM) Variance() *parameter.Parameter { return k.variance }

// Delay holds per-channel delays (out, D); nil for a single channel.
func (k *MOSM) Delay() *parameter.Parameter { return k.delay }

// Phase holds per-channel phases (out); nil for a single channel.
func (k *MOSM) Phase() *parameter.Parameter { return k.phase }

// Ksub evaluates the (i, j) block.
func (k *MOSM) Ksub(i, j int, X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	if err := k.CheckChannels(i, j); err != nil {
		return nil, err
	}
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	D := k.InputDims()
	mag := k.magnitude.Value()
	if i == j {
		v := k.variance.Row(i)
		alpha := mag[i] * mag[i] * k.twoPi * sqrtProd(v)
		return spectralBlock(a1, a2, alpha, k.mean.Row(i), v, make([]float64, D), 0), nil
	}
	atten, mean, variance := crossSpectral(k.mean.Row(i), k.variance.Row(i), k.mean.Row(j), k.variance.Row(j))
	delta, phase := k.delayPhase(i, j, D)
	alpha := mag[i] * mag[j] * atten * k.twoPi * sqrtProd(variance)

	return spectralBlock(a1, a2, alpha, mean, variance, delta, 2*math.Pi*phase), nil
}

// KsubDiag is the constant magnitude_i²·(2π)^(D/2)·√∏variance_i.
func (k *MOSM) KsubDiag(i int, X1 *matrix.Dense) ([]float64, error) {
	if err := k.CheckChannels(i); err != nil {
		return nil, err
	}
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}
	m := k.magnitude.Value()[i]

	return kernel.Filled(a1.Rows(), m*m*k.twoPi*sqrtProd(k.variance.Row(i))), nil
}

// AssignNyquist sets the upper bound of mean[i] to nyquist[i].
func (k *MOSM) AssignNyquist(nyquist [][]float64) error {
	return assignMeanUpper(&k.Base, k.mean, nyquist)
}

// UMOSM is the uncoupled MOSM: the channel magnitudes are the entries of
// M = L·Lᵀ with L the lower triangle of a trained (out, out) matrix, so
// every pair of channels has its own magnitude while M stays PSD.
type UMOSM struct {
	Base
	spectralParams
	magnitude *parameter.Parameter // (out, out), unconstrained
	twoPi     float64
}

// NewUMOSM builds an uncoupled MOSM kernel.
func NewUMOSM(outputDims, inputDims int, opts ...kernel.Option) (*UMOSM, error) {
	b, err := NewBase("uMOSM", outputDims, inputDims, opts...)
	if err != nil {
		return nil, err
	}
	k := &UMOSM{Base: b, twoPi: math.Pow(2*math.Pi, float64(inputDims)/2)}
	rng := k.initRand()
	raw := uniform(rng, outputDims*outputDims)
	for i := 0; i < outputDims; i++ {
		for j := i + 1; j < outputDims; j++ {
			raw[i*outputDims+j] = 0
		}
	}
	if k.magnitude, err = k.NewParameter("magnitude", raw, []int{outputDims, outputDims}); err != nil {
		return nil, err
	}
	if k.spectralParams, err = newSpectralParams(&k.Base, rng); err != nil {
		return nil, err
	}

	return k, nil
}

// Magnitude holds the raw (out, out) matrix whose lower triangle is L.
func (k *UMOSM) Magnitude() *parameter.Parameter { return k.magnitude }

// Mean holds the spectral means (out, D).
func (k *UMOSM) Mean() *parameter.Parameter { return k.mean }

// Variance holds the spectral variances (out, D).
func (k *UMOSM) Variance() *parameter.Parameter { return k.variance }

// Delay holds per-channel delays (out, D); nil for a single channel.
func (k *UMOSM) Delay() *parameter.Parameter { return k.delay }

// Phase holds per-channel phases (out); nil for a single channel.
func (k *UMOSM) Phase() *parameter.Parameter { return k.phase }

// Coupling returns M = tril(raw)·tril(raw)ᵀ.
func (k *UMOSM) Coupling() (*matrix.Dense, error) {
	n := k.OutputDims()
	raw := k.magnitude.Value()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			raw[i*n+j] = 0
		}
	}
	L, err := matrix.NewDenseFrom(n, n, raw)
	if err != nil {
		return nil, multioutputErrorf(k.Name(), err)
	}
	Lt, err := matrix.Transpose(L)
	if err != nil {
		return nil, multioutputErrorf(k.Name(), err)
	}

	return matrix.Mul(L, Lt)
}

// Ksub evaluates the (i, j) block.
func (k *UMOSM) Ksub(i, j int, X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	if err := k.CheckChannels(i, j); err != nil {
		return nil, err
	}
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	M, err := k.Coupling()
	if err != nil {
		return nil, err
	}
	mij, _ := M.At(i, j)
	D := k.InputDims()
	if i == j {
		v := k.variance.Row(i)
		return spectralBlock(a1, a2, mij*k.twoPi*sqrtProd(v), k.mean.Row(i), v, make([]float64, D), 0), nil
	}
	atten, mean, variance := crossSpectral(k.mean.Row(i), k.variance.Row(i), k.mean.Row(j), k.variance.Row(j))
	delta, phase := k.delayPhase(i, j, D)

	return spectralBlock(a1, a2, mij*atten*k.twoPi*sqrtProd(variance), mean, variance, delta, phase), nil
}

// KsubDiag is the constant M[i,i]·(2π)^(D/2)·√∏variance_i.
func (k *UMOSM) KsubDiag(i int, X1 *matrix.Dense) ([]float64, error) {
	if err := k.CheckChannels(i); err != nil {
		return nil, err
	}
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}
	M, err := k.Coupling()
	if err != nil {
		return nil, err
	}
	mii, _ := M.At(i, i)

	return kernel.Filled(a1.Rows(), mii*k.twoPi*sqrtProd(k.variance.Row(i))), nil
}

// AssignNyquist sets the upper bound of mean[i] to nyquist[i].
func (k *UMOSM) AssignNyquist(nyquist [][]float64) error {
	return assignMeanUpper(&k.Base, k.mean, nyquist)
}

var (
	_ Kernel         = (*MOSM)(nil)
	_ Kernel         = (*UMOSM)(nil)
	_ NyquistBounded = (*MOSM)(nil)
	_ NyquistBounded = (*UMOSM)(nil)
)
