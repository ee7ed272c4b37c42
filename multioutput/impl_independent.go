// SPDX-License-Identifier: MIT

package multioutput

import (
	"fmt"

	"github.com/katalvlaran/mogp/kernel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
)

// Independent models every channel with its own single-output kernel and
// no covariance across channels.
type Independent struct {
	Base
	kernels []kernel.Kernel
}

// NewIndependent wraps one kernel per channel. All kernels must share the
// same input dimensions.
func NewIndependent(kernels []kernel.Kernel, opts ...kernel.Option) (*Independent, error) {
	if len(kernels) == 0 {
		return nil, multioutputErrorf("IMO", ErrOutputDims)
	}
	for i, k := range kernels {
		if k == nil {
			return nil, multioutputErrorf("IMO", fmt.Errorf("kernel %d: %w", i, ErrNilKernel))
		}
		if k.InputDims() != kernels[0].InputDims() {
			return nil, multioutputErrorf("IMO", fmt.Errorf("kernel %d: %w", i, ErrMismatch))
		}
	}
	b, err := NewBase("IMO", len(kernels), kernels[0].InputDims(), opts...)
	if err != nil {
		return nil, err
	}

	return &Independent{Base: b, kernels: append([]kernel.Kernel(nil), kernels...)}, nil
}

// Kernel returns the sub-kernel of channel i.
func (k *Independent) Kernel(i int) kernel.Kernel { return k.kernels[i] }

// Parameters lists the parameters of every sub-kernel.
func (k *Independent) Parameters() []*parameter.Parameter {
	var out []*parameter.Parameter
	for _, sub := range k.kernels {
		out = append(out, sub.Parameters()...)
	}

	return out
}

// Ksub returns kernel i's block when i == j and an exact zero block otherwise.
func (k *Independent) Ksub(i, j int, X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	if err := k.CheckChannels(i, j); err != nil {
		return nil, err
	}
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	if i == j {
		if X2 == nil {
			a2 = nil
		}
		return k.kernels[i].K(a1, a2)
	}

	return matrix.NewDense(a1.Rows(), a2.Rows())
}

// KsubDiag returns kernel i's diagonal.
func (k *Independent) KsubDiag(i int, X1 *matrix.Dense) ([]float64, error) {
	if err := k.CheckChannels(i); err != nil {
		return nil, err
	}
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}

	return k.kernels[i].KDiag(a1)
}

// AssignNyquist bounds the spectral means of channel i's kernel by nyquist[i].
func (k *Independent) AssignNyquist(nyquist [][]float64) error {
	if len(nyquist) != k.OutputDims() {
		return multioutputErrorf(k.Name(), ErrOutputDims)
	}
	for i, sub := range k.kernels {
		if err := boundSpectral(sub, nyquist[i]); err != nil {
			return multioutputErrorf(k.Name(), err)
		}
	}

	return nil
}

var (
	_ Kernel         = (*Independent)(nil)
	_ NyquistBounded = (*Independent)(nil)
)
