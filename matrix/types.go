// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view the validators and element-wise kernels
// accept. *Dense is the only implementation in this module; covariance
// blocks, channel-augmented inputs and sampled latents all travel as *Dense.
type Matrix interface {
	// Rows is the number of observations (or block rows).
	Rows() int

	// Cols is the number of input columns (or block columns).
	Cols() int

	// At reads element (i, j); ErrOutOfRange outside the shape.
	At(i, j int) (float64, error)

	// Set writes element (i, j); ErrOutOfRange outside the shape.
	Set(i, j int, v float64) error
}
