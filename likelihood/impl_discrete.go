// SPDX-License-Identifier: MIT

package likelihood

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bernoulli is y ∈ {0, 1} with P(y = 1) = h(f).
type Bernoulli struct {
	base
}

// NewBernoulli builds a Bernoulli likelihood (default link InverseProbit).
func NewBernoulli(opts ...Option) (*Bernoulli, error) {
	l := &Bernoulli{}
	if err := l.setup("Bernoulli", InverseProbit, gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return l, nil
}

// ValidateY requires y ∈ {0, 1}.
func (l *Bernoulli) ValidateY(y []float64, _ *matrix.Dense) error {
	return l.support(y, func(v float64) bool { return v == 0 || v == 1 }, "0 or 1")
}

// LogProb is log h(f) for y ≥ ½ and log(1 - h(f)) otherwise.
func (l *Bernoulli) LogProb(y []float64, f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.logProb(y, f, func(y, f float64) float64 {
		p := l.link.Apply(f)
		if y >= 0.5 {
			return math.Log(p)
		}
		return math.Log(1 - p)
	})
}

// VariationalExpectation uses Gauss-Hermite quadrature.
func (l *Bernoulli) VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error) {
	return ExpectLogProb(l, l.quad, y, mu, v, X)
}

// Mean is h(f).
func (l *Bernoulli) Mean(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.pointwise(f, func(_ int, x float64) float64 { return l.link.Apply(x) })
}

// Variance is h(f)(1 - h(f)).
func (l *Bernoulli) Variance(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.pointwise(f, func(_ int, x float64) float64 {
		p := l.link.Apply(x)
		return p - p*p
	})
}

// Sample draws Bernoulli(h(f)).
func (l *Bernoulli) Sample(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.sample(f, func(x float64, src rand.Source) float64 {
		return distuv.Bernoulli{P: l.link.Apply(x), Src: src}.Rand()
	})
}

// Predict is closed form for InverseProbit: p = h(μ/√(1+σ²)), and the
// bounds collapse onto p. Other links use the default pipeline.
func (l *Bernoulli) Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	if l.link != InverseProbit {
		return l.predict(l, mu, v, X, opts...)
	}
	if err := checkMoments(mu, v); err != nil {
		return Prediction{}, likelihoodErrorf(l.name, err)
	}
	p := make([]float64, len(mu))
	for n := range mu {
		p[n] = l.link.Apply(mu[n] / math.Sqrt(1+v[n]))
	}
	pred := Prediction{Mean: p}
	if gatherPredictOptions(opts...).interval() {
		pred.Lower = append([]float64(nil), p...)
		pred.Upper = append([]float64(nil), p...)
	}

	return pred, nil
}

// Poisson is y ~ Poisson(h(f)).
type Poisson struct {
	base
}

// NewPoisson builds a Poisson likelihood (default link Exp).
func NewPoisson(opts ...Option) (*Poisson, error) {
	l := &Poisson{}
	if err := l.setup("Poisson", Exp, gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return l, nil
}

// ValidateY requires non-negative integer counts.
func (l *Poisson) ValidateY(y []float64, _ *matrix.Dense) error {
	return l.support(y, func(v float64) bool { return v >= 0 && v == math.Trunc(v) && !math.IsInf(v, 1) }, "a non-negative integer count")
}

// LogProb is y log h(f) - log Γ(y+1) - h(f).
func (l *Poisson) LogProb(y []float64, f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.logProb(y, f, func(y, f float64) float64 {
		return y*l.link.Log(f) - lgamma(y+1) - l.link.Apply(f)
	})
}

// VariationalExpectation uses Gauss-Hermite quadrature.
func (l *Poisson) VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error) {
	return ExpectLogProb(l, l.quad, y, mu, v, X)
}

// Mean is h(f).
func (l *Poisson) Mean(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.pointwise(f, func(_ int, x float64) float64 { return l.link.Apply(x) })
}

// Variance is h(f).
func (l *Poisson) Variance(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.pointwise(f, func(_ int, x float64) float64 { return l.link.Apply(x) })
}

// Sample draws Poisson(h(f)).
func (l *Poisson) Sample(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.sample(f, func(x float64, src rand.Source) float64 {
		return distuv.Poisson{Lambda: l.link.Apply(x), Src: src}.Rand()
	})
}

// Predict uses quadrature and Monte-Carlo quantiles.
func (l *Poisson) Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	return l.predict(l, mu, v, X, opts...)
}

// Beta is y ~ Beta(h(f)σ, (1-h(f))σ) on the open unit interval, with mean
// h(f) and concentration σ.
type Beta struct {
	base
	scale *parameter.Parameter
}

// NewBeta builds a beta likelihood (WithScale default 1, default link InverseProbit).
func NewBeta(opts ...Option) (*Beta, error) {
	o := gatherOptions(opts...)
	l := &Beta{}
	if err := l.setup("Beta", InverseProbit, o); err != nil {
		return nil, err
	}
	var err error
	if l.scale, err = l.positive("scale", o.scale); err != nil {
		return nil, err
	}

	return l, nil
}

// Scale is the concentration σ.
func (l *Beta) Scale() *parameter.Parameter { return l.scale }

// ValidateY requires 0 < y < 1.
func (l *Beta) ValidateY(y []float64, _ *matrix.Dense) error {
	return l.support(y, func(v float64) bool { return v > 0 && v < 1 }, "0 < y < 1")
}

// LogProb is the beta log density with α = h(f)σ and β = (1-h(f))σ.
func (l *Beta) LogProb(y []float64, f, _ *matrix.Dense) (*matrix.Dense, error) {
	s := l.scale.Scalar()
	return l.logProb(y, f, func(y, f float64) float64 {
		m := l.link.Apply(f)
		a, b := m*s, (1-m)*s
		return (a-1)*math.Log(y) + (b-1)*math.Log1p(-y) + lgamma(a+b) - lgamma(a) - lgamma(b)
	})
}

// VariationalExpectation uses Gauss-Hermite quadrature.
func (l *Beta) VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error) {
	return ExpectLogProb(l, l.quad, y, mu, v, X)
}

// Mean is h(f).
func (l *Beta) Mean(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.pointwise(f, func(_ int, x float64) float64 { return l.link.Apply(x) })
}

// Variance is h(f)(1 - h(f))/(σ + 1).
func (l *Beta) Variance(f, _ *matrix.Dense) (*matrix.Dense, error) {
	s := l.scale.Scalar()
	return l.pointwise(f, func(_ int, x float64) float64 {
		m := l.link.Apply(x)
		return (m - m*m) / (s + 1)
	})
}

// Sample draws Beta(h(f)σ, (1-h(f))σ).
func (l *Beta) Sample(f, _ *matrix.Dense) (*matrix.Dense, error) {
	s := l.scale.Scalar()
	return l.sample(f, func(x float64, src rand.Source) float64 {
		m := l.link.Apply(x)
		return distuv.Beta{Alpha: m * s, Beta: (1 - m) * s, Src: src}.Rand()
	})
}

// Predict uses quadrature and Monte-Carlo quantiles.
func (l *Beta) Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	return l.predict(l, mu, v, X, opts...)
}

var (
	_ Likelihood = (*Bernoulli)(nil)
	_ Likelihood = (*Poisson)(nil)
	_ Likelihood = (*Beta)(nil)
)
