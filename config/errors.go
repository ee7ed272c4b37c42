// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid is returned by Load when a document holds a value outside
	// its documented domain.
	ErrInvalid = errors.New("config: invalid value")

	// ErrDecode is returned by Load when the document is not valid YAML or
	// carries unknown keys.
	ErrDecode = errors.New("config: cannot decode document")
)

// configErrorf attaches a key or operation tag to a sentinel.
func configErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
