// SPDX-License-Identifier: MIT

package multioutput

import (
	"fmt"

	"github.com/katalvlaran/mogp/kernel"
)

// NewSpectralMixture models each channel independently with a mixture of Q
// spectral components. Components are named "SM<channel>.<q>".
func NewSpectralMixture(outputDims, inputDims, Q int, opts ...kernel.Option) (*Independent, error) {
	if outputDims < 1 {
		return nil, multioutputErrorf("SM", fmt.Errorf("output dims %d: %w", outputDims, ErrOutputDims))
	}
	cfg := kernel.Resolve(opts...).Config()
	kernels := make([]kernel.Kernel, outputDims)
	for i := range kernels {
		mix, err := kernel.Mixture(Q, func(_ int, opts ...kernel.Option) (kernel.Kernel, error) {
			return kernel.NewSpectral(inputDims,
				append(opts, kernel.WithName(fmt.Sprintf("SM%d", i)), kernel.WithConfig(cfg))...)
		})
		if err != nil {
			return nil, multioutputErrorf("SM", err)
		}
		kernels[i] = mix
	}

	return NewIndependent(kernels, append([]kernel.Option{kernel.WithName("SM")}, opts...)...)
}
