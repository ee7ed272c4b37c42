// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
)

// combine is the shared body of Sum and Product.
type combine struct {
	name  string
	parts []Kernel
	op    func(a, b matrix.Matrix) (*matrix.Dense, error)
	dop   func(a, b float64) float64
}

// Sum is k₁ + k₂ + ... over identical inputs.
type Sum struct{ combine }

// Product is k₁ · k₂ · ... over identical inputs.
type Product struct{ combine }

// Add returns the sum of parts. Nested sums are flattened.
// Errors: ErrEmpty, ErrNilKernel, ErrDims when input dims differ.
func Add(parts ...Kernel) (*Sum, error) {
	flat, err := flatten("Sum", parts, func(k Kernel) []Kernel {
		if s, ok := k.(*Sum); ok {
			return s.parts
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Sum{combine{
		name:  "Sum",
		parts: flat,
		op:    matrix.Add,
		dop:   func(a, b float64) float64 { return a + b },
	}}, nil
}

// Mul returns the product of parts. Nested products are flattened.
// Errors: ErrEmpty, ErrNilKernel, ErrDims when input dims differ.
func Mul(parts ...Kernel) (*Product, error) {
	flat, err := flatten("Product", parts, func(k Kernel) []Kernel {
		if p, ok := k.(*Product); ok {
			return p.parts
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Product{combine{
		name:  "Product",
		parts: flat,
		op:    matrix.Hadamard,
		dop:   func(a, b float64) float64 { return a * b },
	}}, nil
}

// Mixture returns the sum of Q components built by component(q, opts...).
// The opts carry WithSuffix(".q") and must be passed to the component's
// constructor, so every component owns distinctly named parameters.
// Errors: ErrEmpty when Q < 1, parameter.ErrDuplicate when two components
// still share a parameter name.
func Mixture(Q int, component func(q int, opts ...Option) (Kernel, error)) (*Sum, error) {
	if Q < 1 {
		return nil, kernelErrorf("Mixture", fmt.Errorf("Q=%d: %w", Q, ErrEmpty))
	}
	parts := make([]Kernel, Q)
	for q := range parts {
		k, err := component(q, WithSuffix(fmt.Sprintf(".%d", q)))
		if err != nil {
			return nil, kernelErrorf("Mixture", err)
		}
		parts[q] = k
	}
	s, err := Add(parts...)
	if err != nil {
		return nil, err
	}
	if err = UniqueNames(s.Parameters()); err != nil {
		return nil, kernelErrorf("Mixture", err)
	}
	s.name = "Mixture"

	return s, nil
}

// UniqueNames fails with parameter.ErrDuplicate on the first repeated
// qualified parameter name.
func UniqueNames(ps []*parameter.Parameter) error {
	seen := make(map[string]bool, len(ps))
	for _, p := range ps {
		if seen[p.Name()] {
			return fmt.Errorf("%s: %w", p.Name(), parameter.ErrDuplicate)
		}
		seen[p.Name()] = true
	}

	return nil
}

func flatten(name string, parts []Kernel, inner func(Kernel) []Kernel) ([]Kernel, error) {
	if len(parts) == 0 {
		return nil, kernelErrorf(name, ErrEmpty)
	}
	flat := make([]Kernel, 0, len(parts))
	for i, k := range parts {
		if k == nil {
			return nil, kernelErrorf(name, fmt.Errorf("part %d: %w", i, ErrNilKernel))
		}
		if sub := inner(k); sub != nil {
			flat = append(flat, sub...)
			continue
		}
		flat = append(flat, k)
	}
	dims := flat[0].InputDims()
	for _, k := range flat[1:] {
		if k.InputDims() != dims {
			return nil, kernelErrorf(name, fmt.Errorf("%s has %d input dims, want %d: %w", k.Name(), k.InputDims(), dims, ErrDims))
		}
	}

	return flat, nil
}

// Name returns "Sum", "Product" or "Mixture".
func (c *combine) Name() string { return c.name }

// InputDims is shared by all parts.
func (c *combine) InputDims() int { return c.parts[0].InputDims() }

// Parts returns the flattened components.
func (c *combine) Parts() []Kernel { return append([]Kernel(nil), c.parts...) }

// Parameters concatenates the parameters of all parts.
func (c *combine) Parameters() []*parameter.Parameter {
	var out []*parameter.Parameter
	for _, k := range c.parts {
		out = append(out, k.Parameters()...)
	}

	return out
}

// K combines the parts' covariance blocks element-wise.
func (c *combine) K(X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	acc, err := c.parts[0].K(X1, X2)
	if err != nil {
		return nil, kernelErrorf(c.name, err)
	}
	for _, k := range c.parts[1:] {
		next, err := k.K(X1, X2)
		if err != nil {
			return nil, kernelErrorf(c.name, err)
		}
		if acc, err = c.op(acc, next); err != nil {
			return nil, kernelErrorf(c.name, err)
		}
	}

	return acc, nil
}

// KDiag combines the parts' diagonals element-wise.
func (c *combine) KDiag(X1 *matrix.Dense) ([]float64, error) {
	acc, err := c.parts[0].KDiag(X1)
	if err != nil {
		return nil, kernelErrorf(c.name, err)
	}
	for _, k := range c.parts[1:] {
		next, err := k.KDiag(X1)
		if err != nil {
			return nil, kernelErrorf(c.name, err)
		}
		for i := range acc {
			acc[i] = c.dop(acc[i], next[i])
		}
	}

	return acc, nil
}

var (
	_ Kernel = (*Sum)(nil)
	_ Kernel = (*Product)(nil)
)
