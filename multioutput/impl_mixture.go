// SPDX-License-Identifier: MIT

package multioutput

import (
	"fmt"

	"github.com/katalvlaran/mogp/kernel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
)

// Sum adds multi-output kernels block by block. All parts share output and
// input dimensions.
type Sum struct {
	name  string
	parts []Kernel
}

// Add sums the parts, flattening nested sums.
func Add(parts ...Kernel) (*Sum, error) {
	if len(parts) == 0 {
		return nil, multioutputErrorf("Sum", ErrNilKernel)
	}
	flat := make([]Kernel, 0, len(parts))
	for i, p := range parts {
		if p == nil {
			return nil, multioutputErrorf("Sum", fmt.Errorf("part %d: %w", i, ErrNilKernel))
		}
		if s, ok := p.(*Sum); ok {
			flat = append(flat, s.parts...)
			continue
		}
		flat = append(flat, p)
	}
	for i, p := range flat {
		if p.OutputDims() != flat[0].OutputDims() || p.InputDims() != flat[0].InputDims() {
			return nil, multioutputErrorf("Sum", fmt.Errorf("part %d (%s): %w", i, p.Name(), ErrMismatch))
		}
	}

	return &Sum{name: "Sum", parts: flat}, nil
}

// Mixture sums Q components built by component(q, opts...). The opts carry
// kernel.WithSuffix(".q") so that parameter names and initial values differ
// between components; parameter.ErrDuplicate when a component drops them.
func Mixture(Q int, component func(q int, opts ...kernel.Option) (Kernel, error)) (*Sum, error) {
	if Q < 1 {
		return nil, multioutputErrorf("Mixture", fmt.Errorf("Q=%d: %w", Q, ErrOutputDims))
	}
	parts := make([]Kernel, Q)
	for q := range parts {
		k, err := component(q, kernel.WithSuffix(fmt.Sprintf(".%d", q)))
		if err != nil {
			return nil, multioutputErrorf("Mixture", err)
		}
		parts[q] = k
	}
	s, err := Add(parts...)
	if err != nil {
		return nil, err
	}
	if err = kernel.UniqueNames(s.Parameters()); err != nil {
		return nil, multioutputErrorf("Mixture", err)
	}
	s.name = "Mixture"

	return s, nil
}

// Name returns "Sum" or "Mixture".
func (s *Sum) Name() string { return s.name }

// OutputDims returns the shared number of channels.
func (s *Sum) OutputDims() int { return s.parts[0].OutputDims() }

// InputDims returns the shared number of input dimensions.
func (s *Sum) InputDims() int { return s.parts[0].InputDims() }

// Parts returns the flattened summands.
func (s *Sum) Parts() []Kernel { return append([]Kernel(nil), s.parts...) }

// Parameters concatenates the parts' parameters.
func (s *Sum) Parameters() []*parameter.Parameter {
	var out []*parameter.Parameter
	for _, p := range s.parts {
		out = append(out, p.Parameters()...)
	}

	return out
}

// Ksub adds the parts' (i, j) blocks.
func (s *Sum) Ksub(i, j int, X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	var acc *matrix.Dense
	for _, p := range s.parts {
		b, err := p.Ksub(i, j, X1, X2)
		if err != nil {
			return nil, multioutputErrorf(s.name, err)
		}
		if acc == nil {
			acc = b
			continue
		}
		if acc, err = matrix.Add(acc, b); err != nil {
			return nil, multioutputErrorf(s.name, err)
		}
	}

	return acc, nil
}

// KsubDiag adds the parts' diagonals.
func (s *Sum) KsubDiag(i int, X1 *matrix.Dense) ([]float64, error) {
	var acc []float64
	for _, p := range s.parts {
		d, err := p.KsubDiag(i, X1)
		if err != nil {
			return nil, multioutputErrorf(s.name, err)
		}
		if acc == nil {
			acc = d
			continue
		}
		for n := range acc {
			acc[n] += d[n]
		}
	}

	return acc, nil
}

// AssignNyquist forwards the bounds to every part with spectral means.
func (s *Sum) AssignNyquist(nyquist [][]float64) error {
	for _, p := range s.parts {
		if err := AssignNyquist(p, nyquist); err != nil {
			return multioutputErrorf(s.name, err)
		}
	}

	return nil
}

var (
	_ Kernel         = (*Sum)(nil)
	_ NyquistBounded = (*Sum)(nil)
)
