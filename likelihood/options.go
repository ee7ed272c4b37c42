// SPDX-License-Identifier: MIT

package likelihood

import (
	"math"

	"github.com/katalvlaran/mogp/config"
)

const (
	// DefaultSamples is the Monte-Carlo sample count of Predict.
	DefaultSamples = 10000

	// DefaultDoF is the StudentT degrees of freedom.
	DefaultDoF = 3.0
)

// Option configures a likelihood constructor. Options that do not apply to
// a family are ignored by it.
type Option func(*options)

type options struct {
	quadratures int // 0 means the config default
	link        Link
	linkSet     bool
	scale       float64
	shape       float64
	dof         float64
	name        string
	cfg         *config.Config
}

// WithQuadratures sets the Gauss-Hermite degree. Panics if deg < 1.
func WithQuadratures(deg int) Option {
	if deg < 1 {
		panic("likelihood: WithQuadratures(deg<1)")
	}

	return func(o *options) { o.quadratures = deg }
}

// WithLink overrides the family's default link. Panics on an undeclared link.
func WithLink(l Link) Option {
	if !l.Valid() {
		panic("likelihood: WithLink(invalid)")
	}

	return func(o *options) { o.link, o.linkSet = l, true }
}

// WithScale sets the initial scale σ. Panics unless σ > 0 and finite.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 1) {
		panic("likelihood: WithScale(s<=0)")
	}

	return func(o *options) { o.scale = s }
}

// WithShape sets the initial shape k. Panics unless k > 0 and finite.
func WithShape(k float64) Option {
	if !(k > 0) || math.IsInf(k, 1) {
		panic("likelihood: WithShape(k<=0)")
	}

	return func(o *options) { o.shape = k }
}

// WithDoF sets the StudentT degrees of freedom. Panics unless ν > 0.
func WithDoF(nu float64) Option {
	if !(nu > 0) {
		panic("likelihood: WithDoF(nu<=0)")
	}

	return func(o *options) { o.dof = nu }
}

// WithName overrides the family name used for parameter names and logging.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithConfig supplies the numeric context. nil means config.Default().
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = config.Or(cfg) }
}

func gatherOptions(opts ...Option) options {
	o := options{scale: 1, shape: 1, dof: DefaultDoF, cfg: config.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.quadratures == 0 {
		o.quadratures = o.cfg.Quadratures()
	}

	return o
}

// PredictOption configures Predict.
type PredictOption func(*predictOptions)

type predictOptions struct {
	ci      [2]float64
	hasCI   bool
	sigma   float64
	samples int
}

// WithCI requests the [lo, hi] quantile interval. Panics unless
// 0 ≤ lo ≤ hi ≤ 1.
func WithCI(lo, hi float64) PredictOption {
	if !(lo >= 0 && lo <= hi && hi <= 1) {
		panic("likelihood: WithCI requires 0 <= lo <= hi <= 1")
	}

	return func(o *predictOptions) { o.ci, o.hasCI = [2]float64{lo, hi}, true }
}

// WithSigma requests a ±s standard deviation interval. Families without a
// closed form use the equivalent normal coverage. Panics unless s > 0.
func WithSigma(s float64) PredictOption {
	if !(s > 0) {
		panic("likelihood: WithSigma(s<=0)")
	}

	return func(o *predictOptions) { o.sigma = s }
}

// WithSamples sets the Monte-Carlo sample count. Panics if n < 1.
func WithSamples(n int) PredictOption {
	if n < 1 {
		panic("likelihood: WithSamples(n<1)")
	}

	return func(o *predictOptions) { o.samples = n }
}

func gatherPredictOptions(opts ...PredictOption) predictOptions {
	o := predictOptions{samples: DefaultSamples}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// interval reports whether bounds were requested.
func (o predictOptions) interval() bool { return o.hasCI || o.sigma > 0 }
