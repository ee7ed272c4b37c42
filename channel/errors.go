// SPDX-License-Identifier: MIT

package channel

import (
	"errors"
	"fmt"
)

var (
	// ErrInputShape indicates a missing channel list, a nil channel or
	// inconsistent column counts.
	ErrInputShape = errors.New("channel: invalid input shape")

	// ErrChannelCount indicates that the output list length differs from the
	// input list length.
	ErrChannelCount = errors.New("channel: input and output channel counts differ")

	// ErrRowCount indicates a row count that disagrees with its counterpart
	// (inputs vs outputs in Merge, stacked rows vs ΣN in Split).
	ErrRowCount = errors.New("channel: row count mismatch")

	// ErrChannelIndex indicates a channel tag that is not an integer in
	// [0, output_dims).
	ErrChannelIndex = errors.New("channel: invalid channel index")
)

func channelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
