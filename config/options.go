// SPDX-License-Identifier: MIT

package config

import (
	"math"

	"go.uber.org/zap"
)

// Defaults (single source of truth).
const (
	// DefaultPositiveMinimum is the lower bound of strictly positive parameters.
	DefaultPositiveMinimum = 1e-8

	// DefaultQuadratures is the Gauss-Hermite degree used by likelihoods.
	DefaultQuadratures = 20

	// DefaultSeed roots every random stream derived through NewRand.
	DefaultSeed uint64 = 1

	// DefaultEpsilon is the tolerance for symmetry and PSD checks.
	DefaultEpsilon = 1e-9
)

const (
	panicPositiveMinimum = "config: WithPositiveMinimum: value must be finite and > 0"
	panicQuadratures     = "config: WithQuadratures: degree must be >= 1"
	panicEpsilon         = "config: WithEpsilon: eps must be finite and >= 0"
	panicLoggerNil       = "config: WithLogger(nil)"
)

// Option customizes a Config under construction.
// Constructors panic on nonsensical values; New itself never panics.
type Option func(*Config)

// WithPositiveMinimum sets the floor of strictly positive parameters.
func WithPositiveMinimum(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic(panicPositiveMinimum)
	}

	return func(c *Config) { c.positiveMinimum = v }
}

// WithQuadratures sets the default Gauss-Hermite degree.
func WithQuadratures(deg int) Option {
	if deg < 1 {
		panic(panicQuadratures)
	}

	return func(c *Config) { c.quadratures = deg }
}

// WithSeed sets the root seed of derived random streams.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.seed = seed }
}

// WithEpsilon sets the numeric tolerance used by structural checks.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilon)
	}

	return func(c *Config) { c.eps = eps }
}

// WithLogger injects the structured logger handed to every component.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(c *Config) { c.logger = l }
}
