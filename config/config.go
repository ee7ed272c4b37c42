// SPDX-License-Identifier: MIT

package config

import (
	"hash/fnv"
	"math/rand/v2"

	"go.uber.org/zap"
)

// Config is the immutable numeric context of a model.
type Config struct {
	positiveMinimum float64
	quadratures     int
	seed            uint64
	eps             float64
	logger          *zap.Logger
}

// New builds a Config from defaults overridden by opts (applied in order).
func New(opts ...Option) *Config {
	c := &Config{
		positiveMinimum: DefaultPositiveMinimum,
		quadratures:     DefaultQuadratures,
		seed:            DefaultSeed,
		eps:             DefaultEpsilon,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Default returns a Config holding only the documented defaults.
func Default() *Config { return New() }

// Or returns c, or Default() when c is nil. Constructors accepting an
// optional *Config resolve it through Or.
func Or(c *Config) *Config {
	if c == nil {
		return Default()
	}

	return c
}

// PositiveMinimum is the floor of strictly positive parameters.
func (c *Config) PositiveMinimum() float64 { return c.positiveMinimum }

// Quadratures is the default Gauss-Hermite degree.
func (c *Config) Quadratures() int { return c.quadratures }

// Seed is the root seed of derived random streams.
func (c *Config) Seed() uint64 { return c.seed }

// Epsilon is the tolerance of symmetry and PSD checks.
func (c *Config) Epsilon() float64 { return c.eps }

// Logger returns the configured logger (never nil).
func (c *Config) Logger() *zap.Logger { return c.logger }

// NewRand derives a deterministic PCG stream from the root seed and the
// FNV-1a hash of stream. Equal (seed, stream) pairs replay the same draws;
// different stream names are statistically independent.
func (c *Config) NewRand(stream string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(stream))

	return rand.New(rand.NewPCG(c.seed, h.Sum64()))
}
