// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/mogp/config"

// Option customizes a kernel under construction. Multi-output kernels
// accept the same options.
type Option func(*Options)

// Options holds the resolved construction settings.
type Options struct {
	name       string
	suffix     string
	activeDims []int
	cfg        *config.Config
}

// WithName overrides the kernel name used to qualify parameter names.
// Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("kernel: WithName(\"\")")
	}

	return func(o *Options) { o.name = name }
}

// WithSuffix appends s to the kernel name, after WithName if both are
// given. Mixture uses it to tell its components apart.
func WithSuffix(s string) Option {
	return func(o *Options) { o.suffix += s }
}

// WithActiveDims restricts the kernel to the given input columns.
// Panics on negative or repeated indices.
func WithActiveDims(dims ...int) Option {
	seen := make(map[int]bool, len(dims))
	for _, d := range dims {
		if d < 0 || seen[d] {
			panic("kernel: WithActiveDims: indices must be distinct and >= 0")
		}
		seen[d] = true
	}
	cp := append([]int(nil), dims...)

	return func(o *Options) { o.activeDims = cp }
}

// WithConfig injects the numeric context. Panics on nil.
func WithConfig(cfg *config.Config) Option {
	if cfg == nil {
		panic("kernel: WithConfig(nil)")
	}

	return func(o *Options) { o.cfg = cfg }
}

// Resolve applies opts over defaults. Exported for packages that build
// kernels on top of Base.
func Resolve(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.cfg = config.Or(o.cfg)

	return o
}

// Config returns the resolved numeric context.
func (o Options) Config() *config.Config { return o.cfg }
