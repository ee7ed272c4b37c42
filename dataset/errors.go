// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates a nil input matrix or an output count that differs
	// from the number of input rows.
	ErrShape = errors.New("dataset: invalid shape")

	// ErrEmpty indicates an empty channel list or a channel without points.
	ErrEmpty = errors.New("dataset: empty")

	// ErrSpacing indicates an input dimension with fewer than two distinct
	// values, for which no spacing or range exists.
	ErrSpacing = errors.New("dataset: degenerate input spacing")

	// ErrComponents indicates a component count below one.
	ErrComponents = errors.New("dataset: invalid component count")

	// ErrKernel indicates a kernel that is not a per-channel mixture of
	// spectral components.
	ErrKernel = errors.New("dataset: not a spectral mixture kernel")
)

func datasetErrorf(op string, err error) error {
	return fmt.Errorf("dataset.%s: %w", op, err)
}
