// SPDX-License-Identifier: MIT

package multioutput

import (
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
)

// Kernel is a multi-output covariance function.
type Kernel interface {
	// Name identifies the kernel and prefixes its parameter names.
	Name() string

	// OutputDims is the number of channels.
	OutputDims() int

	// InputDims is the number of input dimensions (channel column excluded).
	InputDims() int

	// Ksub returns the |X1|×|X2| covariance between channel i at X1 and
	// channel j at X2; X2 == nil means X1.
	Ksub(i, j int, X1, X2 *matrix.Dense) (*matrix.Dense, error)

	// KsubDiag returns the diagonal of Ksub(i, i, X1, nil).
	KsubDiag(i int, X1 *matrix.Dense) ([]float64, error)

	// Parameters lists the learnable parameters, sub-kernels included.
	Parameters() []*parameter.Parameter
}

// NyquistBounded is implemented by kernels with spectral means. nyquist
// holds one upper frequency per channel and input dimension.
type NyquistBounded interface {
	AssignNyquist(nyquist [][]float64) error
}
