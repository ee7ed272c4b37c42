// SPDX-License-Identifier: MIT

package multioutput

import (
	"errors"
	"fmt"
)

var (
	// ErrChannel indicates a channel index outside [0, output_dims).
	ErrChannel = errors.New("multioutput: channel out of range")

	// ErrOutputDims indicates output_dims < 1 or a per-channel list whose
	// length differs from output_dims.
	ErrOutputDims = errors.New("multioutput: invalid output dimensions")

	// ErrNilKernel indicates a nil sub-kernel.
	ErrNilKernel = errors.New("multioutput: nil kernel")

	// ErrIndefinite indicates parameters outside the region where a kernel
	// is guaranteed to yield positive semi-definite covariances.
	ErrIndefinite = errors.New("multioutput: parameters outside the positive semi-definite region")

	// ErrMismatch indicates sub-kernels or components with differing
	// input or output dimensions.
	ErrMismatch = errors.New("multioutput: dimension mismatch")
)

func multioutputErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}
