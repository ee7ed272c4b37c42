// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
	"gonum.org/v1/gonum/floats"
)

// White is σ²·δ(x,x'): σ²·I for K(X1, nil) and zero across distinct sets.
type White struct {
	Base
	variance *parameter.Parameter
}

// NewWhite builds a white noise kernel.
func NewWhite(inputDims int, opts ...Option) (*White, error) {
	b, err := NewBase("White", inputDims, opts...)
	if err != nil {
		return nil, err
	}
	k := &White{Base: b}
	if k.variance, err = k.NewPositive("variance", []float64{1}, []int{}); err != nil {
		return nil, err
	}

	return k, nil
}

// Variance is the noise variance.
func (k *White) Variance() *parameter.Parameter { return k.variance }

// K returns σ²·I when X2 is nil and zeros otherwise.
func (k *White) K(X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	out, _ := matrix.NewDense(a1.Rows(), a2.Rows())
	if X2 == nil {
		v := k.variance.Scalar()
		for i := 0; i < a1.Rows(); i++ {
			out.Data()[i*a1.Rows()+i] = v
		}
	}

	return out, nil
}

// KDiag is the constant variance.
func (k *White) KDiag(X1 *matrix.Dense) ([]float64, error) {
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}

	return Filled(a1.Rows(), k.variance.Scalar()), nil
}

// Constant is σ² for every pair.
type Constant struct {
	Base
	variance *parameter.Parameter
}

// NewConstant builds a constant kernel.
func NewConstant(inputDims int, opts ...Option) (*Constant, error) {
	b, err := NewBase("Constant", inputDims, opts...)
	if err != nil {
		return nil, err
	}
	k := &Constant{Base: b}
	if k.variance, err = k.NewPositive("variance", []float64{1}, []int{}); err != nil {
		return nil, err
	}

	return k, nil
}

// Variance is the constant covariance.
func (k *Constant) Variance() *parameter.Parameter { return k.variance }

// K returns σ² everywhere.
func (k *Constant) K(X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	out, _ := matrix.NewDense(a1.Rows(), a2.Rows())
	v := k.variance.Scalar()
	for i := range out.Data() {
		out.Data()[i] = v
	}

	return out, nil
}

// KDiag is the constant variance.
func (k *Constant) KDiag(X1 *matrix.Dense) ([]float64, error) {
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}

	return Filled(a1.Rows(), k.variance.Scalar()), nil
}

// Linear is bias + σ²·⟨x,x'⟩.
type Linear struct {
	Base
	variance *parameter.Parameter
	bias     *parameter.Parameter // >= 0
}

// NewLinear builds a linear (dot product) kernel.
func NewLinear(inputDims int, opts ...Option) (*Linear, error) {
	b, err := NewBase("Linear", inputDims, opts...)
	if err != nil {
		return nil, err
	}
	k := &Linear{Base: b}
	if k.variance, err = k.NewPositive("variance", []float64{1}, []int{}); err != nil {
		return nil, err
	}
	if k.bias, err = k.NewParameter("bias", []float64{0}, []int{}, parameter.WithLower(0)); err != nil {
		return nil, err
	}

	return k, nil
}

// Variance scales the dot product.
func (k *Linear) Variance() *parameter.Parameter { return k.variance }

// Bias is the constant offset.
func (k *Linear) Bias() *parameter.Parameter { return k.bias }

// K evaluates the covariance block.
func (k *Linear) K(X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	v, c := k.variance.Scalar(), k.bias.Scalar()

	return Pairwise(a1, a2, func(x, y []float64) float64 { return c + v*dot(x, y) }), nil
}

// KDiag evaluates bias + σ²·|x|².
func (k *Linear) KDiag(X1 *matrix.Dense) ([]float64, error) {
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}
	v, c := k.variance.Scalar(), k.bias.Scalar()
	out := make([]float64, a1.Rows())
	for i := range out {
		x := a1.RawRow(i)
		out[i] = c + v*dot(x, x)
	}

	return out, nil
}

// Polynomial is (σ²·⟨x,x'⟩ + offset)^degree.
type Polynomial struct {
	Base
	degree   int
	variance *parameter.Parameter
	offset   *parameter.Parameter // >= 0
}

// NewPolynomial builds a polynomial kernel of the given degree (>= 1).
func NewPolynomial(inputDims, degree int, opts ...Option) (*Polynomial, error) {
	b, err := NewBase("Polynomial", inputDims, opts...)
	if err != nil {
		return nil, err
	}
	if degree < 1 {
		return nil, kernelErrorf(b.Name(), fmt.Errorf("degree %d: %w", degree, ErrDims))
	}
	k := &Polynomial{Base: b, degree: degree}
	if k.variance, err = k.NewPositive("variance", []float64{1}, []int{}); err != nil {
		return nil, err
	}
	if k.offset, err = k.NewParameter("offset", []float64{0}, []int{}, parameter.WithLower(0)); err != nil {
		return nil, err
	}

	return k, nil
}

// Degree is the fixed polynomial degree.
func (k *Polynomial) Degree() int { return k.degree }

// K evaluates the covariance block.
func (k *Polynomial) K(X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	v, c, p := k.variance.Scalar(), k.offset.Scalar(), float64(k.degree)
	lin := Pairwise(a1, a2, func(x, y []float64) float64 { return v*dot(x, y) + c })

	return matrix.Apply(lin, func(z float64) float64 { return math.Pow(z, p) })
}

// KDiag evaluates (σ²·|x|² + offset)^degree.
func (k *Polynomial) KDiag(X1 *matrix.Dense) ([]float64, error) {
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}
	v, c, p := k.variance.Scalar(), k.offset.Scalar(), float64(k.degree)
	out := make([]float64, a1.Rows())
	for i := range out {
		x := a1.RawRow(i)
		out[i] = math.Pow(v*dot(x, x)+c, p)
	}

	return out, nil
}

// Cosine is σ²·cos(2π Σ_d (x_d-x'_d)/ℓ_d).
type Cosine struct {
	Base
	magnitude   *parameter.Parameter
	lengthscale *parameter.Parameter
}

// NewCosine builds a cosine kernel.
func NewCosine(inputDims int, opts ...Option) (*Cosine, error) {
	b, err := NewBase("Cosine", inputDims, opts...)
	if err != nil {
		return nil, err
	}
	k := &Cosine{Base: b}
	if k.magnitude, err = k.NewPositive("magnitude", []float64{1}, []int{}); err != nil {
		return nil, err
	}
	if k.lengthscale, err = k.NewPositive("lengthscale", Filled(inputDims, 1), []int{inputDims}); err != nil {
		return nil, err
	}

	return k, nil
}

// K evaluates the covariance block.
func (k *Cosine) K(X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	mag, ell := k.magnitude.Scalar(), k.lengthscale.Value()

	return Pairwise(a1, a2, func(x, y []float64) float64 {
		var s float64
		for d := range x {
			s += (x[d] - y[d]) / ell[d]
		}
		return mag * math.Cos(2*math.Pi*s)
	}), nil
}

// KDiag is the constant magnitude.
func (k *Cosine) KDiag(X1 *matrix.Dense) ([]float64, error) {
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}

	return Filled(a1.Rows(), k.magnitude.Scalar()), nil
}

func dot(x, y []float64) float64 { return floats.Dot(x, y) }

var (
	_ Kernel = (*White)(nil)
	_ Kernel = (*Constant)(nil)
	_ Kernel = (*Linear)(nil)
	_ Kernel = (*Polynomial)(nil)
	_ Kernel = (*Cosine)(nil)
)
