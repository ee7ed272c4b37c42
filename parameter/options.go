// SPDX-License-Identifier: MIT

package parameter

import "go.uber.org/zap"

// Option customizes a Parameter under construction.
type Option func(*options)

type options struct {
	name      string
	lower     []float64
	upper     []float64
	trainable bool
	logger    *zap.Logger
}

// WithName sets the bare parameter name (qualified later by Set.Register).
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLower sets the lower bound: one value (broadcast) or one per element.
func WithLower(b ...float64) Option {
	return func(o *options) { o.lower = append([]float64(nil), b...) }
}

// WithUpper sets the upper bound: one value (broadcast) or one per element.
func WithUpper(b ...float64) Option {
	return func(o *options) { o.upper = append([]float64(nil), b...) }
}

// Fixed marks the parameter as not trainable.
func Fixed() Option {
	return func(o *options) { o.trainable = false }
}

// WithLogger attaches a logger for clamp events. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("parameter: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// AssignOption customizes a single Assign call.
type AssignOption func(*assignOptions)

type assignOptions struct {
	lower, upper       []float64
	setLower, setUpper bool
}

// AssignLower replaces the lower bound before the value is clamped.
// Calling it with no values removes the bound.
func AssignLower(b ...float64) AssignOption {
	return func(o *assignOptions) {
		o.lower, o.setLower = append([]float64(nil), b...), true
	}
}

// AssignUpper replaces the upper bound before the value is clamped.
// Calling it with no values removes the bound.
func AssignUpper(b ...float64) AssignOption {
	return func(o *assignOptions) {
		o.upper, o.setUpper = append([]float64(nil), b...), true
	}
}
