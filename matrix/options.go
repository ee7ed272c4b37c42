// SPDX-License-Identifier: MIT

// Package matrix: functional numeric policy.
//
// Contract:
//   - Option is a functional setter over an unexported Options value.
//   - WithX constructors panic only on nonsensical values (programmer error).
//   - No global mutable state: each constructor call resolves its own Options.
package matrix

import "math"

// Numeric policy defaults.
const (
	// DefaultEpsilon is the symmetry tolerance callers pass to
	// ValidateSymmetric when they have no configured one.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles finite-value validation in Set.
	// Off by default: NaN encodes undefined moments downstream.
	DefaultValidateNaNInf = false
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf makes NewDenseFrom and Set reject NaN and ±Inf on the
// created matrix. Observed inputs are built this way; latent tensors are not.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// gatherOptions resolves defaults and applies user options in order.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
