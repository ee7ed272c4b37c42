// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrDims indicates inconsistent input or active dimensions.
	ErrDims = errors.New("kernel: invalid dimensions")

	// ErrNilInput indicates a nil input matrix.
	ErrNilInput = errors.New("kernel: nil input")

	// ErrEmpty indicates a composition without parts or a mixture with Q < 1.
	ErrEmpty = errors.New("kernel: empty composition")

	// ErrNilKernel indicates a nil part in a composition.
	ErrNilKernel = errors.New("kernel: nil kernel")
)

func kernelErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}
