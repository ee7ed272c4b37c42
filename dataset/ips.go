// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/mogp/kernel"
	"github.com/katalvlaran/mogp/multioutput"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Estimate holds initial values for Q spectral components of one channel.
// Means and Variances are Q×D.
type Estimate struct {
	Weights   []float64
	Means     [][]float64
	Variances [][]float64
}

// IPS draws independent initial parameters for Q spectral components:
//   - weight_q = 2·std(Y)/Q,
//   - mean_qd ~ nyquist_d · U(0, 1),
//   - variance_qd = 1/(|N(0, 1)| · range_d), range_d = max - min of dim d.
//
// Errors: ErrComponents when Q < 1, ErrShape and ErrSpacing from the channel.
func IPS(ch Channel, Q int, rng *rand.Rand) (Estimate, error) {
	if Q < 1 {
		return Estimate{}, datasetErrorf("IPS", fmt.Errorf("Q=%d: %w", Q, ErrComponents))
	}
	nyquist, err := NyquistEstimation(ch)
	if err != nil {
		return Estimate{}, err
	}
	D := ch.InputDims()
	span := make([]float64, D)
	for d := range span {
		col, _ := ch.X.Col(d)
		span[d] = floats.Max(col) - floats.Min(col)
	}

	w := 2 * stat.PopStdDev(ch.Y, nil) / float64(Q)
	unit := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	est := Estimate{
		Weights:   make([]float64, Q),
		Means:     make([][]float64, Q),
		Variances: make([][]float64, Q),
	}
	for q := 0; q < Q; q++ {
		est.Weights[q] = w
		est.Means[q] = make([]float64, D)
		est.Variances[q] = make([]float64, D)
		for d := 0; d < D; d++ {
			est.Means[q][d] = nyquist[d] * rng.Float64()
			est.Variances[q][d] = 1 / (math.Abs(unit.Rand()) * span[d])
		}
	}

	return est, nil
}

// InitSpectralMixture bounds the spectral means of k by the channel Nyquist
// frequencies and overwrites every component with an IPS draw. k must be
// built by multioutput.NewSpectralMixture (or have the same layout) over
// len(chs) channels. Values are clamped into the parameter bounds.
func InitSpectralMixture(k *multioutput.Independent, chs []Channel, rng *rand.Rand) error {
	if k == nil || k.OutputDims() != len(chs) {
		return datasetErrorf("InitSpectralMixture", ErrKernel)
	}
	nyquist, err := Nyquist(chs)
	if err != nil {
		return err
	}
	if err = multioutput.AssignNyquist(k, nyquist); err != nil {
		return datasetErrorf("InitSpectralMixture", err)
	}
	for j, ch := range chs {
		comps, err := spectralParts(k.Kernel(j))
		if err != nil {
			return datasetErrorf("InitSpectralMixture", fmt.Errorf("channel %d: %w", j, err))
		}
		est, err := IPS(ch, len(comps), rng)
		if err != nil {
			return err
		}
		for q, c := range comps {
			if err = c.Magnitude().Assign([]float64{est.Weights[q]}); err != nil {
				return datasetErrorf("InitSpectralMixture", err)
			}
			if err = c.MeanParameter().Assign(est.Means[q]); err != nil {
				return datasetErrorf("InitSpectralMixture", err)
			}
			if err = c.Variance().Assign(est.Variances[q]); err != nil {
				return datasetErrorf("InitSpectralMixture", err)
			}
		}
	}

	return nil
}

// spectralParts unwraps a mixture (or a lone component) into its spectral
// components.
func spectralParts(k kernel.Kernel) ([]*kernel.Spectral, error) {
	if s, ok := k.(*kernel.Spectral); ok {
		return []*kernel.Spectral{s}, nil
	}
	mix, ok := k.(*kernel.Sum)
	if !ok {
		return nil, ErrKernel
	}
	parts := mix.Parts()
	out := make([]*kernel.Spectral, len(parts))
	for q, p := range parts {
		s, ok := p.(*kernel.Spectral)
		if !ok {
			return nil, ErrKernel
		}
		out[q] = s
	}

	return out, nil
}
