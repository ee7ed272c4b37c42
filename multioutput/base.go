// SPDX-License-Identifier: MIT

package multioutput

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/mogp/kernel"
)

// Base extends kernel.Base with the number of channels.
type Base struct {
	kernel.Base
	outputDims int
}

// NewBase validates the dimensions and resolves the options.
func NewBase(defaultName string, outputDims, inputDims int, opts ...kernel.Option) (Base, error) {
	b, err := kernel.NewBase(defaultName, inputDims, opts...)
	if err != nil {
		return Base{}, err
	}
	if outputDims < 1 {
		return Base{}, multioutputErrorf(b.Name(), fmt.Errorf("output dims %d: %w", outputDims, ErrOutputDims))
	}

	return Base{Base: b, outputDims: outputDims}, nil
}

// OutputDims returns the number of channels.
func (b *Base) OutputDims() int { return b.outputDims }

// CheckChannels validates channel indices.
func (b *Base) CheckChannels(ch ...int) error {
	for _, c := range ch {
		if c < 0 || c >= b.outputDims {
			return multioutputErrorf(b.Name(), fmt.Errorf("channel %d of %d: %w", c, b.outputDims, ErrChannel))
		}
	}

	return nil
}

// initRand is the deterministic stream for initial parameter values.
func (b *Base) initRand() *rand.Rand { return b.Config().NewRand(b.Name() + ".init") }

// uniform draws n values in (0, 1].
func uniform(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1 - rng.Float64()
	}

	return out
}
