// SPDX-License-Identifier: MIT

package parameter

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates a value or bound whose length disagrees with the shape.
	ErrShape = errors.New("parameter: shape mismatch")

	// ErrBounds indicates a lower bound above its upper bound, or a NaN bound.
	ErrBounds = errors.New("parameter: invalid bounds")

	// ErrDuplicate is returned by Set.Register when the name is already taken.
	ErrDuplicate = errors.New("parameter: already registered")

	// ErrNil indicates a nil *Parameter handed to Set.Register.
	ErrNil = errors.New("parameter: nil parameter")
)

func parameterErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}
