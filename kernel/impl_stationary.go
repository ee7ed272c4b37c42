// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
)

// stationary implements magnitude·profile(r²) with r² = Σ_d ((x_d-x'_d)/ℓ_d)².
type stationary struct {
	Base
	magnitude   *parameter.Parameter // scalar, > 0
	lengthscale *parameter.Parameter // (D), > 0
	profile     func(r2 float64) float64
}

func newStationary(name string, inputDims int, profile func(r2 float64) float64, opts ...Option) (stationary, error) {
	b, err := NewBase(name, inputDims, opts...)
	if err != nil {
		return stationary{}, err
	}
	k := stationary{Base: b, profile: profile}
	if k.magnitude, err = k.NewPositive("magnitude", []float64{1}, []int{}); err != nil {
		return stationary{}, err
	}
	if k.lengthscale, err = k.NewPositive("lengthscale", Filled(inputDims, 1), []int{inputDims}); err != nil {
		return stationary{}, err
	}

	return k, nil
}

// Magnitude is the variance scale of the kernel.
func (k *stationary) Magnitude() *parameter.Parameter { return k.magnitude }

// Lengthscale holds one lengthscale per input dimension.
func (k *stationary) Lengthscale() *parameter.Parameter { return k.lengthscale }

// K evaluates the covariance block.
func (k *stationary) K(X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	mag, ell := k.magnitude.Scalar(), k.lengthscale.Value()

	return Pairwise(a1, a2, func(x, y []float64) float64 {
		var r2 float64
		for d := range x {
			t := (x[d] - y[d]) / ell[d]
			r2 += t * t
		}
		return mag * k.profile(r2)
	}), nil
}

// KDiag is the constant magnitude·profile(0).
func (k *stationary) KDiag(X1 *matrix.Dense) ([]float64, error) {
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}

	return Filled(a1.Rows(), k.magnitude.Scalar()*k.profile(0)), nil
}

// SquaredExponential is σ²·exp(-½r²).
type SquaredExponential struct{ stationary }

// NewSquaredExponential builds a squared exponential kernel.
func NewSquaredExponential(inputDims int, opts ...Option) (*SquaredExponential, error) {
	s, err := newStationary("SquaredExponential", inputDims, func(r2 float64) float64 {
		return math.Exp(-0.5 * r2)
	}, opts...)
	if err != nil {
		return nil, err
	}

	return &SquaredExponential{s}, nil
}

// Exponential is the Matérn-½ kernel σ²·exp(-r).
type Exponential struct{ stationary }

// NewExponential builds an exponential kernel.
func NewExponential(inputDims int, opts ...Option) (*Exponential, error) {
	s, err := newStationary("Exponential", inputDims, func(r2 float64) float64 {
		return math.Exp(-math.Sqrt(r2))
	}, opts...)
	if err != nil {
		return nil, err
	}

	return &Exponential{s}, nil
}

// Matern32 is σ²·(1+√3r)·exp(-√3r).
type Matern32 struct{ stationary }

// NewMatern32 builds a Matérn-3/2 kernel.
func NewMatern32(inputDims int, opts ...Option) (*Matern32, error) {
	s, err := newStationary("Matern32", inputDims, func(r2 float64) float64 {
		r := math.Sqrt(3 * r2)
		return (1 + r) * math.Exp(-r)
	}, opts...)
	if err != nil {
		return nil, err
	}

	return &Matern32{s}, nil
}

// Matern52 is σ²·(1+√5r+5r²/3)·exp(-√5r).
type Matern52 struct{ stationary }

// NewMatern52 builds a Matérn-5/2 kernel.
func NewMatern52(inputDims int, opts ...Option) (*Matern52, error) {
	s, err := newStationary("Matern52", inputDims, func(r2 float64) float64 {
		r := math.Sqrt(5 * r2)
		return (1 + r + 5*r2/3) * math.Exp(-r)
	}, opts...)
	if err != nil {
		return nil, err
	}

	return &Matern52{s}, nil
}

// RationalQuadratic is σ²·(1 + r²/(2α))^(-α).
type RationalQuadratic struct {
	stationary
	alpha *parameter.Parameter // relative variance, > 0
}

// NewRationalQuadratic builds a rational quadratic kernel.
func NewRationalQuadratic(inputDims int, opts ...Option) (*RationalQuadratic, error) {
	k := &RationalQuadratic{}
	s, err := newStationary("RationalQuadratic", inputDims, func(r2 float64) float64 {
		a := k.alpha.Scalar()
		return math.Pow(1+r2/(2*a), -a)
	}, opts...)
	if err != nil {
		return nil, err
	}
	k.stationary = s
	if k.alpha, err = k.NewPositive("alpha", []float64{1}, []int{}); err != nil {
		return nil, err
	}

	return k, nil
}

// Alpha is the relative weighting of large and small scale variations.
func (k *RationalQuadratic) Alpha() *parameter.Parameter { return k.alpha }

// Periodic is σ²·exp(-2 Σ_d sin²(π(x_d-x'_d)/p_d)/ℓ_d²).
type Periodic struct {
	Base
	magnitude   *parameter.Parameter
	lengthscale *parameter.Parameter
	period      *parameter.Parameter
}

// NewPeriodic builds a periodic kernel.
func NewPeriodic(inputDims int, opts ...Option) (*Periodic, error) {
	b, err := NewBase("Periodic", inputDims, opts...)
	if err != nil {
		return nil, err
	}
	k := &Periodic{Base: b}
	if k.magnitude, err = k.NewPositive("magnitude", []float64{1}, []int{}); err != nil {
		return nil, err
	}
	if k.lengthscale, err = k.NewPositive("lengthscale", Filled(inputDims, 1), []int{inputDims}); err != nil {
		return nil, err
	}
	if k.period, err = k.NewPositive("period", Filled(inputDims, 1), []int{inputDims}); err != nil {
		return nil, err
	}

	return k, nil
}

// Magnitude is the variance scale.
func (k *Periodic) Magnitude() *parameter.Parameter { return k.magnitude }

// Lengthscale holds one lengthscale per dimension.
func (k *Periodic) Lengthscale() *parameter.Parameter { return k.lengthscale }

// Period holds one period per dimension.
func (k *Periodic) Period() *parameter.Parameter { return k.period }

// K evaluates the covariance block.
func (k *Periodic) K(X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	mag, ell, p := k.magnitude.Scalar(), k.lengthscale.Value(), k.period.Value()

	return Pairwise(a1, a2, func(x, y []float64) float64 {
		var s float64
		for d := range x {
			v := math.Sin(math.Pi*(x[d]-y[d])/p[d]) / ell[d]
			s += v * v
		}
		return mag * math.Exp(-2*s)
	}), nil
}

// KDiag is the constant magnitude.
func (k *Periodic) KDiag(X1 *matrix.Dense) ([]float64, error) {
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}

	return Filled(a1.Rows(), k.magnitude.Scalar()), nil
}

var (
	_ Kernel = (*SquaredExponential)(nil)
	_ Kernel = (*Exponential)(nil)
	_ Kernel = (*Matern32)(nil)
	_ Kernel = (*Matern52)(nil)
	_ Kernel = (*RationalQuadratic)(nil)
	_ Kernel = (*Periodic)(nil)
)
