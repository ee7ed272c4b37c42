// SPDX-License-Identifier: MIT

package joint

import (
	"github.com/katalvlaran/mogp/config"
)

const (
	// DefaultWorkers computes blocks serially.
	DefaultWorkers = 1

	// DefaultJitterAttempts is the number of factorization attempts in Cholesky.
	DefaultJitterAttempts = 5

	// jitterGrowth multiplies the jitter after each failed attempt.
	jitterGrowth = 10.0
)

// Option configures assembly and factorization.
type Option func(*options)

type options struct {
	workers  int
	attempts int
	cfg      *config.Config
}

// WithWorkers sets the number of goroutines computing blocks. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("joint: WithWorkers(n<1)")
	}

	return func(o *options) { o.workers = n }
}

// WithJitterAttempts sets how many jitter levels Cholesky tries. Panics if n < 1.
func WithJitterAttempts(n int) Option {
	if n < 1 {
		panic("joint: WithJitterAttempts(n<1)")
	}

	return func(o *options) { o.attempts = n }
}

// WithConfig supplies the logger and epsilon. nil means config.Default().
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = config.Or(cfg) }
}

func gatherOptions(opts ...Option) options {
	o := options{workers: DefaultWorkers, attempts: DefaultJitterAttempts, cfg: config.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
