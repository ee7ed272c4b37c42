// SPDX-License-Identifier: MIT

package likelihood

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
	"gonum.org/v1/gonum/stat/distuv"
)

var log2Pi = math.Log(2 * math.Pi)

// Gaussian is y ~ N(f, σ²).
type Gaussian struct {
	base
	scale *parameter.Parameter
}

// NewGaussian builds a Gaussian likelihood (WithScale, default 1).
func NewGaussian(opts ...Option) (*Gaussian, error) {
	o := gatherOptions(opts...)
	l := &Gaussian{}
	if err := l.setup("Gaussian", Identity, o); err != nil {
		return nil, err
	}
	var err error
	if l.scale, err = l.positive("scale", o.scale); err != nil {
		return nil, err
	}

	return l, nil
}

// Scale is σ.
func (l *Gaussian) Scale() *parameter.Parameter { return l.scale }

// ValidateY accepts any real y.
func (l *Gaussian) ValidateY([]float64, *matrix.Dense) error { return nil }

// LogProb is -½(log 2π + 2 log σ + ((y-f)/σ)²).
func (l *Gaussian) LogProb(y []float64, f, _ *matrix.Dense) (*matrix.Dense, error) {
	s := l.scale.Scalar()
	return l.logProb(y, f, func(y, f float64) float64 {
		z := (y - f) / s
		return -0.5 * (log2Pi + 2*math.Log(s) + z*z)
	})
}

// VariationalExpectation is exact:
// ½ Σ_n (-((y_n-μ_n)² + σ²_n)/σ² - log 2π - 2 log σ).
func (l *Gaussian) VariationalExpectation(y, mu, v []float64, _ *matrix.Dense) (float64, error) {
	if len(y) != len(mu) {
		return 0, likelihoodErrorf(l.name, ErrShape)
	}
	if err := checkMoments(mu, v); err != nil {
		return 0, likelihoodErrorf(l.name, err)
	}
	s := l.scale.Scalar()
	var sum float64
	for n := range y {
		d := y[n] - mu[n]
		sum += -(d*d+v[n])/(s*s) - log2Pi - 2*math.Log(s)
	}

	return 0.5 * sum, nil
}

// Mean is f.
func (l *Gaussian) Mean(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.pointwise(f, func(_ int, x float64) float64 { return x })
}

// Variance is σ².
func (l *Gaussian) Variance(f, _ *matrix.Dense) (*matrix.Dense, error) {
	s := l.scale.Scalar()
	return l.pointwise(f, func(int, float64) float64 { return s * s })
}

// Sample draws N(f, σ²).
func (l *Gaussian) Sample(f, _ *matrix.Dense) (*matrix.Dense, error) {
	s := l.scale.Scalar()
	return l.sample(f, func(x float64, src rand.Source) float64 {
		return distuv.Normal{Mu: x, Sigma: s, Src: src}.Rand()
	})
}

// Predict is closed form: the mean is μ and the bounds are quantiles of
// N(μ, σ²_latent + σ²).
func (l *Gaussian) Predict(mu, v []float64, _ *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	if err := checkMoments(mu, v); err != nil {
		return Prediction{}, likelihoodErrorf(l.name, err)
	}
	o := gatherPredictOptions(opts...)
	pred := Prediction{Mean: append([]float64(nil), mu...)}
	if !o.interval() {
		return pred, nil
	}
	zLo, zHi := -o.sigma, o.sigma
	if o.hasCI {
		zLo, zHi = distuv.UnitNormal.Quantile(o.ci[0]), distuv.UnitNormal.Quantile(o.ci[1])
	}
	s2 := l.scale.Scalar() * l.scale.Scalar()
	pred.Lower = make([]float64, len(mu))
	pred.Upper = make([]float64, len(mu))
	for n := range mu {
		sd := math.Sqrt(v[n] + s2)
		pred.Lower[n] = mu[n] + zLo*sd
		pred.Upper[n] = mu[n] + zHi*sd
	}

	return pred, nil
}

// StudentT is the location-scale Student's t with ν degrees of freedom
// centred at f. ν is fixed at construction.
type StudentT struct {
	base
	dof   float64
	scale *parameter.Parameter
}

// NewStudentT builds a Student's t likelihood (WithDoF default 3, WithScale default 1).
func NewStudentT(opts ...Option) (*StudentT, error) {
	o := gatherOptions(opts...)
	l := &StudentT{dof: o.dof}
	if err := l.setup("StudentT", Identity, o); err != nil {
		return nil, err
	}
	var err error
	if l.scale, err = l.positive("scale", o.scale); err != nil {
		return nil, err
	}

	return l, nil
}

// DoF returns ν.
func (l *StudentT) DoF() float64 { return l.dof }

// Scale is σ.
func (l *StudentT) Scale() *parameter.Parameter { return l.scale }

// ValidateY accepts any real y.
func (l *StudentT) ValidateY([]float64, *matrix.Dense) error { return nil }

// LogProb evaluates the Student's t log density.
func (l *StudentT) LogProb(y []float64, f, _ *matrix.Dense) (*matrix.Dense, error) {
	nu, s := l.dof, l.scale.Scalar()
	a, _ := math.Lgamma((nu + 1) / 2)
	b, _ := math.Lgamma(nu / 2)
	c := a - b - 0.5*math.Log(nu*math.Pi*s*s)
	return l.logProb(y, f, func(y, f float64) float64 {
		z := (y - f) / s
		return -0.5*(nu+1)*math.Log1p(z*z/nu) + c
	})
}

// VariationalExpectation uses Gauss-Hermite quadrature.
func (l *StudentT) VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error) {
	return ExpectLogProb(l, l.quad, y, mu, v, X)
}

// Mean is f, or NaN when ν ≤ 1.
func (l *StudentT) Mean(f, _ *matrix.Dense) (*matrix.Dense, error) {
	if l.dof <= 1 {
		return l.pointwise(f, func(int, float64) float64 { return math.NaN() })
	}
	return l.pointwise(f, func(_ int, x float64) float64 { return x })
}

// Variance is σ²ν/(ν-2), or NaN when ν ≤ 2.
func (l *StudentT) Variance(f, _ *matrix.Dense) (*matrix.Dense, error) {
	v := math.NaN()
	if l.dof > 2 {
		s := l.scale.Scalar()
		v = s * s * l.dof / (l.dof - 2)
	}
	return l.pointwise(f, func(int, float64) float64 { return v })
}

// Sample draws from the Student's t centred at f.
func (l *StudentT) Sample(f, _ *matrix.Dense) (*matrix.Dense, error) {
	nu, s := l.dof, l.scale.Scalar()
	return l.sample(f, func(x float64, src rand.Source) float64 {
		return distuv.StudentsT{Mu: x, Sigma: s, Nu: nu, Src: src}.Rand()
	})
}

// Predict uses quadrature and Monte-Carlo quantiles.
func (l *StudentT) Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	return l.predict(l, mu, v, X, opts...)
}

// Laplace is y ~ Laplace(f, σ).
type Laplace struct {
	base
	scale *parameter.Parameter
}

// NewLaplace builds a Laplace likelihood (WithScale, default 1).
func NewLaplace(opts ...Option) (*Laplace, error) {
	o := gatherOptions(opts...)
	l := &Laplace{}
	if err := l.setup("Laplace", Identity, o); err != nil {
		return nil, err
	}
	var err error
	if l.scale, err = l.positive("scale", o.scale); err != nil {
		return nil, err
	}

	return l, nil
}

// Scale is σ.
func (l *Laplace) Scale() *parameter.Parameter { return l.scale }

// ValidateY accepts any real y.
func (l *Laplace) ValidateY([]float64, *matrix.Dense) error { return nil }

// LogProb is -log 2σ - |y-f|/σ.
func (l *Laplace) LogProb(y []float64, f, _ *matrix.Dense) (*matrix.Dense, error) {
	s := l.scale.Scalar()
	return l.logProb(y, f, func(y, f float64) float64 {
		return -math.Log(2*s) - math.Abs(y-f)/s
	})
}

// VariationalExpectation uses Gauss-Hermite quadrature.
func (l *Laplace) VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error) {
	return ExpectLogProb(l, l.quad, y, mu, v, X)
}

// Mean is f.
func (l *Laplace) Mean(f, _ *matrix.Dense) (*matrix.Dense, error) {
	return l.pointwise(f, func(_ int, x float64) float64 { return x })
}

// Variance is 2σ².
func (l *Laplace) Variance(f, _ *matrix.Dense) (*matrix.Dense, error) {
	s := l.scale.Scalar()
	return l.pointwise(f, func(int, float64) float64 { return 2 * s * s })
}

// Sample draws Laplace(f, σ).
func (l *Laplace) Sample(f, _ *matrix.Dense) (*matrix.Dense, error) {
	s := l.scale.Scalar()
	return l.sample(f, func(x float64, src rand.Source) float64 {
		return distuv.Laplace{Mu: x, Scale: s, Src: src}.Rand()
	})
}

// Predict uses quadrature and Monte-Carlo quantiles.
func (l *Laplace) Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	return l.predict(l, mu, v, X, opts...)
}

// LogGaussian is log y ~ N(f, σ²).
type LogGaussian struct {
	base
	scale *parameter.Parameter
}

// NewLogGaussian builds a log-normal likelihood (WithScale, default 1).
func NewLogGaussian(opts ...Option) (*LogGaussian, error) {
	o := gatherOptions(opts...)
	l := &LogGaussian{}
	if err := l.setup("LogGaussian", Identity, o); err != nil {
		return nil, err
	}
	var err error
	if l.scale, err = l.positive("scale", o.scale); err != nil {
		return nil, err
	}

	return l, nil
}

// Scale is σ.
func (l *LogGaussian) Scale() *parameter.Parameter { return l.scale }

// ValidateY requires y > 0.
func (l *LogGaussian) ValidateY(y []float64, _ *matrix.Dense) error {
	return l.support(y, func(v float64) bool { return v > 0 }, "y > 0")
}

// LogProb is the Gaussian log density of log y minus log y.
func (l *LogGaussian) LogProb(y []float64, f, _ *matrix.Dense) (*matrix.Dense, error) {
	s := l.scale.Scalar()
	return l.logProb(y, f, func(y, f float64) float64 {
		ly := math.Log(y)
		z := (ly - f) / s
		return -0.5*(log2Pi+2*math.Log(s)+z*z) - ly
	})
}

// VariationalExpectation uses Gauss-Hermite quadrature.
func (l *LogGaussian) VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error) {
	return ExpectLogProb(l, l.quad, y, mu, v, X)
}

// Mean is exp(f + σ²/2).
func (l *LogGaussian) Mean(f, _ *matrix.Dense) (*matrix.Dense, error) {
	s := l.scale.Scalar()
	return l.pointwise(f, func(_ int, x float64) float64 { return math.Exp(x + 0.5*s*s) })
}

// Variance is (exp(σ²)-1)·exp(2f + σ²).
func (l *LogGaussian) Variance(f, _ *matrix.Dense) (*matrix.Dense, error) {
	s2 := l.scale.Scalar() * l.scale.Scalar()
	return l.pointwise(f, func(_ int, x float64) float64 {
		return math.Expm1(s2) * math.Exp(2*x+s2)
	})
}

// Sample draws LogNormal(f, σ).
func (l *LogGaussian) Sample(f, _ *matrix.Dense) (*matrix.Dense, error) {
	s := l.scale.Scalar()
	return l.sample(f, func(x float64, src rand.Source) float64 {
		return distuv.LogNormal{Mu: x, Sigma: s, Src: src}.Rand()
	})
}

// Predict uses quadrature and Monte-Carlo quantiles.
func (l *LogGaussian) Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	return l.predict(l, mu, v, X, opts...)
}

var (
	_ Likelihood = (*Gaussian)(nil)
	_ Likelihood = (*StudentT)(nil)
	_ Likelihood = (*Laplace)(nil)
	_ Likelihood = (*LogGaussian)(nil)
)
