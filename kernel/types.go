// SPDX-License-Identifier: MIT

package kernel

import (
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
)

// Kernel is a single-output covariance function.
type Kernel interface {
	// Name identifies the kernel and prefixes its parameter names.
	Name() string

	// InputDims is the number of input dimensions the kernel consumes.
	InputDims() int

	// K returns the |X1|×|X2| covariance; X2 == nil means X1.
	K(X1, X2 *matrix.Dense) (*matrix.Dense, error)

	// KDiag returns the diagonal of K(X1, nil).
	KDiag(X1 *matrix.Dense) ([]float64, error)

	// Parameters lists the learnable parameters, sub-kernels included.
	Parameters() []*parameter.Parameter
}

// SpectralMean is implemented by kernels whose parameters include a
// spectral mean that can be bounded by a Nyquist frequency.
type SpectralMean interface {
	MeanParameter() *parameter.Parameter
}
