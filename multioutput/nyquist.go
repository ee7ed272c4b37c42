// SPDX-License-Identifier: MIT

package multioutput

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mogp/kernel"
	"github.com/katalvlaran/mogp/parameter"
)

// AssignNyquist bounds the spectral means of k from above by the per-channel,
// per-dimension Nyquist frequencies. Kernels without spectral means are
// left untouched.
func AssignNyquist(k Kernel, nyquist [][]float64) error {
	if k == nil {
		return ErrNilKernel
	}
	nb, ok := k.(NyquistBounded)
	if !ok {
		return nil
	}

	return nb.AssignNyquist(nyquist)
}

// checkNyquist validates the (out, D) shape of nyquist.
func checkNyquist(b *Base, nyquist [][]float64) error {
	if len(nyquist) != b.OutputDims() {
		return multioutputErrorf(b.Name(), fmt.Errorf("%d nyquist rows for %d channels: %w", len(nyquist), b.OutputDims(), ErrOutputDims))
	}
	for i, row := range nyquist {
		if len(row) != b.InputDims() {
			return multioutputErrorf(b.Name(), fmt.Errorf("channel %d: %d nyquist values for %d dims: %w", i, len(row), b.InputDims(), ErrMismatch))
		}
	}

	return nil
}

// assignMeanUpper bounds an (out, D) mean parameter row by row.
func assignMeanUpper(b *Base, mean *parameter.Parameter, nyquist [][]float64) error {
	if err := checkNyquist(b, nyquist); err != nil {
		return err
	}
	upper := make([]float64, 0, b.OutputDims()*b.InputDims())
	for _, row := range nyquist {
		upper = append(upper, row...)
	}
	if err := mean.Assign(nil, parameter.AssignUpper(upper...)); err != nil {
		return multioutputErrorf(b.Name(), err)
	}

	return nil
}

// minOverChannels reduces nyquist to its per-dimension minimum.
func minOverChannels(b *Base, nyquist [][]float64) ([]float64, error) {
	if err := checkNyquist(b, nyquist); err != nil {
		return nil, err
	}
	out := make([]float64, b.InputDims())
	for d := range out {
		out[d] = math.Inf(1)
		for _, row := range nyquist {
			out[d] = math.Min(out[d], row[d])
		}
	}

	return out, nil
}

// boundSpectral sets the upper bound of every spectral mean reachable from
// k through sums and products.
func boundSpectral(k kernel.Kernel, upper []float64) error {
	if sm, ok := k.(kernel.SpectralMean); ok {
		return sm.MeanParameter().Assign(nil, parameter.AssignUpper(upper...))
	}
	if c, ok := k.(interface{ Parts() []kernel.Kernel }); ok {
		for _, part := range c.Parts() {
			if err := boundSpectral(part, upper); err != nil {
				return err
			}
		}
	}

	return nil
}
