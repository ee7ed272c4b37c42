// SPDX-License-Identifier: MIT

package likelihood

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
	"gonum.org/v1/gonum/stat/distuv"
)

func gammaFn(x float64) float64 {
	v, _ := math.Lgamma(x)
	return math.Exp(v)
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// sinc is the normalized sin(πx)/(πx).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// Exponential is y ~ Exponential with mean h(f).
type Exponential struct {
	base
}

// NewExponential builds an exponential likelihood (default link Exp).
func NewExponential(opts ...Option) (*Exponential, error) {
	l := &Exponential{}
	if err := l.setup("Exponential", Exp, gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return l, nil
}

// ValidateY requires y ≥ 0.
func (l *Exponential) ValidateY(y []float64, _ *matrix.Dense) error {
	return l.support(y, func(v float64) bool { return v >= 0 }, "y >= 0")
}

// LogProb is -y/h(f) - log h(f).
func (l *Exponential) LogProb(y []float64, f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.logProb(y, f, func(y, f float64) float64 {
		return -y/l.link.Apply(f) - l.link.Log(f)
	})
}

// VariationalExpectation uses Gauss-Hermite quadrature.
func (l *Exponential) VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error) {
	return ExpectLogProb(l, l.quad, y, mu, v, X)
}

// Mean is h(f).
func (l *Exponential) Mean(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.pointwise(f, func(_ int, x float64) float64 { return l.link.Apply(x) })
}

// Variance is h(f)².
func (l *Exponential) Variance(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.pointwise(f, func(_ int, x float64) float64 {
		h := l.link.Apply(x)
		return h * h
	})
}

// Sample draws an exponential with mean h(f).
func (l *Exponential) Sample(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.sample(f, func(x float64, src rand.Source) float64 {
		return distuv.Exponential{Rate: 1 / l.link.Apply(x), Src: src}.Rand()
	})
}

// Predict uses quadrature and Monte-Carlo quantiles.
func (l *Exponential) Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	return l.predict(l, mu, v, X, opts...)
}

// Gamma is y ~ Gamma(shape k, scale h(f)).
type Gamma struct {
	base
	shape *parameter.Parameter
}

// NewGamma builds a gamma likelihood (WithShape default 1, default link Exp).
func NewGamma(opts ...Option) (*Gamma, error) {
	o := gatherOptions(opts...)
	l := &Gamma{}
	if err := l.setup("Gamma", Exp, o); err != nil {
		return nil, err
	}
	var err error
	if l.shape, err = l.positive("shape", o.shape); err != nil {
		return nil, err
	}

	return l, nil
}

// Shape is k.
func (l *Gamma) Shape() *parameter.Parameter { return l.shape }

// ValidateY requires y > 0.
func (l *Gamma) ValidateY(y []float64, _ *matrix.Dense) error {
	return l.support(y, func(v float64) bool { return v > 0 }, "y > 0")
}

// LogProb is -y/h + (k-1) log y - log Γ(k) - k log h.
func (l *Gamma) LogProb(y []float64, f, _ *matrix.Dense) (*matrix.Dense, error) {
	k := l.shape.Scalar()
	lg := lgamma(k)
	return l.logProb(y, f, func(y, f float64) float64 {
		return -y/l.link.Apply(f) + (k-1)*math.Log(y) - lg - k*l.link.Log(f)
	})
}

// VariationalExpectation uses Gauss-Hermite quadrature.
func (l *Gamma) VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error) {
	return ExpectLogProb(l, l.quad, y, mu, v, X)
}

// Mean is k·h(f).
func (l *Gamma) Mean(f, _ *matrix.Dense) (*matrix.Dense, error) {
	k := l.shape.Scalar()
	return l.pointwise(f, func(_ int, x float64) float64 { return k * l.link.Apply(x) })
}

// Variance is k·h(f)².
func (l *Gamma) Variance(f, _ *matrix.Dense) (*matrix.Dense, error) {
	k := l.shape.Scalar()
	return l.pointwise(f, func(_ int, x float64) float64 {
		h := l.link.Apply(x)
		return k * h * h
	})
}

// Sample draws Gamma(k, rate 1/h(f)).
func (l *Gamma) Sample(f, _ *matrix.Dense) (*matrix.Dense, error) {
	k := l.shape.Scalar()
	return l.sample(f, func(x float64, src rand.Source) float64 {
		return distuv.Gamma{Alpha: k, Beta: 1 / l.link.Apply(x), Src: src}.Rand()
	})
}

// Predict uses quadrature and Monte-Carlo quantiles.
func (l *Gamma) Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	return l.predict(l, mu, v, X, opts...)
}

// Weibull is y ~ Weibull(shape k, scale h(f)).
type Weibull struct {
	base
	shape *parameter.Parameter
}

// NewWeibull builds a Weibull likelihood (WithShape default 1, default link Exp).
func NewWeibull(opts ...Option) (*Weibull, error) {
	o := gatherOptions(opts...)
	l := &Weibull{}
	if err := l.setup("Weibull", Exp, o); err != nil {
		return nil, err
	}
	var err error
	if l.shape, err = l.positive("shape", o.shape); err != nil {
		return nil, err
	}

	return l, nil
}

// Shape is k.
func (l *Weibull) Shape() *parameter.Parameter { return l.shape }

// ValidateY requires y > 0.
func (l *Weibull) ValidateY(y []float64, _ *matrix.Dense) error {
	return l.support(y, func(v float64) bool { return v > 0 }, "y > 0")
}

// LogProb is -k log h + log k + (k-1) log y - (y/h)^k.
func (l *Weibull) LogProb(y []float64, f, _ *matrix.Dense) (*matrix.Dense, error) {
	k := l.shape.Scalar()
	return l.logProb(y, f, func(y, f float64) float64 {
		return -k*l.link.Log(f) + math.Log(k) + (k-1)*math.Log(y) - math.Pow(y/l.link.Apply(f), k)
	})
}

// VariationalExpectation uses Gauss-Hermite quadrature.
func (l *Weibull) VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error) {
	return ExpectLogProb(l, l.quad, y, mu, v, X)
}

// Mean is h(f)·Γ(1 + 1/k).
func (l *Weibull) Mean(f, _ *matrix.Dense) (*matrix.Dense, error) {
	g1 := gammaFn(1 + 1/l.shape.Scalar())
	return l.pointwise(f, func(_ int, x float64) float64 { return l.link.Apply(x) * g1 })
}

// Variance is h(f)²·(Γ(1 + 2/k) - Γ(1 + 1/k)²).
func (l *Weibull) Variance(f, _ *matrix.Dense) (*matrix.Dense, error) {
	k := l.shape.Scalar()
	g1, g2 := gammaFn(1+1/k), gammaFn(1+2/k)
	return l.pointwise(f, func(_ int, x float64) float64 {
		h := l.link.Apply(x)
		return h * h * (g2 - g1*g1)
	})
}

// Sample draws Weibull(k, h(f)).
func (l *Weibull) Sample(f, _ *matrix.Dense) (*matrix.Dense, error) {
	k := l.shape.Scalar()
	return l.sample(f, func(x float64, src rand.Source) float64 {
		return distuv.Weibull{K: k, Lambda: l.link.Apply(x), Src: src}.Rand()
	})
}

// Predict uses quadrature and Monte-Carlo quantiles.
func (l *Weibull) Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	return l.predict(l, mu, v, X, opts...)
}

// LogLogistic is y ~ LogLogistic(scale h(f), shape k). It has no sampler,
// so intervals from Predict fail with ErrNotImplemented.
type LogLogistic struct {
	base
	shape *parameter.Parameter
}

// NewLogLogistic builds a log-logistic likelihood (WithShape default 1, default link Exp).
func NewLogLogistic(opts ...Option) (*LogLogistic, error) {
	o := gatherOptions(opts...)
	l := &LogLogistic{}
	if err := l.setup("LogLogistic", Exp, o); err != nil {
		return nil, err
	}
	var err error
	if l.shape, err = l.positive("shape", o.shape); err != nil {
		return nil, err
	}

	return l, nil
}

// Shape is k.
func (l *LogLogistic) Shape() *parameter.Parameter { return l.shape }

// ValidateY requires y ≥ 0.
func (l *LogLogistic) ValidateY(y []float64, _ *matrix.Dense) error {
	return l.support(y, func(v float64) bool { return v >= 0 }, "y >= 0")
}

// LogProb is -k log h - 2 log(1 + (y/h)^k) + log k + (k-1) log y.
func (l *LogLogistic) LogProb(y []float64, f, _ *matrix.Dense) (*matrix.Dense, error) {
	k := l.shape.Scalar()
	return l.logProb(y, f, func(y, f float64) float64 {
		return -k*l.link.Log(f) - 2*math.Log1p(math.Pow(y/l.link.Apply(f), k)) + math.Log(k) + (k-1)*math.Log(y)
	})
}

// VariationalExpectation uses Gauss-Hermite quadrature.
func (l *LogLogistic) VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error) {
	return ExpectLogProb(l, l.quad, y, mu, v, X)
}

// Mean is h(f)/sinc(1/k), or NaN when k ≤ 1.
func (l *LogLogistic) Mean(f, _ *matrix.Dense) (*matrix.Dense, error) {
	k := l.shape.Scalar()
	if k <= 1 {
		return l.pointwise(f, func(int, float64) float64 { return math.NaN() })
	}
	b := 1 / sinc(1/k)
	return l.pointwise(f, func(_ int, x float64) float64 { return l.link.Apply(x) * b })
}

// Variance is h(f)²·(1/sinc(2/k) - 1/sinc(1/k)²), or NaN when k ≤ 2.
func (l *LogLogistic) Variance(f, _ *matrix.Dense) (*matrix.Dense, error) {
	k := l.shape.Scalar()
	if k <= 2 {
		return l.pointwise(f, func(int, float64) float64 { return math.NaN() })
	}
	a, b := 1/sinc(2/k), 1/sinc(1/k)
	return l.pointwise(f, func(_ int, x float64) float64 {
		h := l.link.Apply(x)
		return h * h * (a - b*b)
	})
}

// Sample is not available.
func (l *LogLogistic) Sample(*matrix.Dense, *matrix.Dense) (*matrix.Dense, error) {
	return nil, likelihoodErrorf(l.name, ErrNotImplemented)
}

// Predict uses quadrature; intervals are not available.
func (l *LogLogistic) Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	return l.predict(l, mu, v, X, opts...)
}

// ChiSquared treats f as the degrees of freedom: y ~ χ²(f).
type ChiSquared struct {
	base
}

// NewChiSquared builds a chi-squared likelihood.
func NewChiSquared(opts ...Option) (*ChiSquared, error) {
	l := &ChiSquared{}
	if err := l.setup("ChiSquared", Identity, gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return l, nil
}

// ValidateY requires y > 0.
func (l *ChiSquared) ValidateY(y []float64, _ *matrix.Dense) error {
	return l.support(y, func(v float64) bool { return v > 0 }, "y > 0")
}

// LogProb is -½f log 2 - log Γ(f/2) + (f/2-1) log y - y/2.
func (l *ChiSquared) LogProb(y []float64, f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.logProb(y, f, func(y, f float64) float64 {
		return -0.5*f*math.Ln2 - lgamma(f/2) + (f/2-1)*math.Log(y) - 0.5*y
	})
}

// VariationalExpectation uses Gauss-Hermite quadrature.
func (l *ChiSquared) VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error) {
	return ExpectLogProb(l, l.quad, y, mu, v, X)
}

// Mean is f.
func (l *ChiSquared) Mean(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.pointwise(f, func(_ int, x float64) float64 { return x })
}

// Variance is 2f.
func (l *ChiSquared) Variance(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.pointwise(f, func(_ int, x float64) float64 { return 2 * x })
}

// Sample is not available.
func (l *ChiSquared) Sample(*matrix.Dense, *matrix.Dense) (*matrix.Dense, error) {
	return nil, likelihoodErrorf(l.name, ErrNotImplemented)
}

// Predict uses quadrature; intervals are not available.
func (l *ChiSquared) Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	return l.predict(l, mu, v, X, opts...)
}

var (
	_ Likelihood = (*Exponential)(nil)
	_ Likelihood = (*Gamma)(nil)
	_ Likelihood = (*Weibull)(nil)
	_ Likelihood = (*LogLogistic)(nil)
	_ Likelihood = (*ChiSquared)(nil)
)
