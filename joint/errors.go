// SPDX-License-Identifier: MIT

package joint

import (
	"errors"
	"fmt"
)

var (
	// ErrNilKernel indicates a nil multi-output kernel.
	ErrNilKernel = errors.New("joint: nil kernel")

	// ErrNotSymmetric indicates a covariance that is not square and symmetric.
	ErrNotSymmetric = errors.New("joint: matrix is not symmetric")

	// ErrNotPSD indicates a factorization that failed after every jitter attempt.
	ErrNotPSD = errors.New("joint: matrix is not positive definite")

	// ErrJitter indicates a starting jitter that is not finite and positive,
	// so escalation could never add to the diagonal.
	ErrJitter = errors.New("joint: jitter must be finite and positive")

	// ErrEigen indicates that the eigendecomposition did not converge.
	ErrEigen = errors.New("joint: eigendecomposition failed")
)

func jointErrorf(op string, err error) error {
	return fmt.Errorf("joint.%s: %w", op, err)
}
