// SPDX-License-Identifier: MIT

package multioutput

import (
	"fmt"

	"github.com/katalvlaran/mogp/kernel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
)

// LMC is the linear model of coregionalization: Q latent single-output
// kernels mixed into every channel through rank-Rq weights,
//
//	Ksub(i, j) = Σ_q (Σ_r w_iqr w_jqr) · K_q.
type LMC struct {
	Base
	kernels []kernel.Kernel
	rank    int
	weight  *parameter.Parameter // (out, Q, Rq), > 0
}

// NewLMC builds an LMC kernel over the latent kernels.
func NewLMC(outputDims int, kernels []kernel.Kernel, rank int, opts ...kernel.Option) (*LMC, error) {
	if len(kernels) == 0 {
		return nil, multioutputErrorf("LMC", kernel.ErrEmpty)
	}
	for q, sub := range kernels {
		if sub == nil {
			return nil, multioutputErrorf("LMC", fmt.Errorf("kernel %d: %w", q, ErrNilKernel))
		}
		if sub.InputDims() != kernels[0].InputDims() {
			return nil, multioutputErrorf("LMC", fmt.Errorf("kernel %d: %w", q, ErrMismatch))
		}
	}
	b, err := NewBase("LMC", outputDims, kernels[0].InputDims(), opts...)
	if err != nil {
		return nil, err
	}
	if rank < 1 {
		return nil, multioutputErrorf(b.Name(), fmt.Errorf("rank %d: %w", rank, ErrOutputDims))
	}
	k := &LMC{Base: b, kernels: append([]kernel.Kernel(nil), kernels...), rank: rank}
	Q := len(kernels)
	if k.weight, err = k.NewPositive("weight", uniform(k.initRand(), outputDims*Q*rank), []int{outputDims, Q, rank}); err != nil {
		return nil, err
	}

	return k, nil
}

// Rank returns Rq.
func (k *LMC) Rank() int { return k.rank }

// Weight holds the mixing weights (out, Q, Rq).
func (k *LMC) Weight() *parameter.Parameter { return k.weight }

// Kernel returns latent kernel q.
func (k *LMC) Kernel(q int) kernel.Kernel { return k.kernels[q] }

// Parameters lists the weights followed by the latent kernels' parameters.
func (k *LMC) Parameters() []*parameter.Parameter {
	out := k.Base.Parameters()
	for _, sub := range k.kernels {
		out = append(out, sub.Parameters()...)
	}

	return out
}

// coefficient returns Σ_r w_iqr w_jqr.
func (k *LMC) coefficient(i, j, q int) float64 {
	var c float64
	for r := 0; r < k.rank; r++ {
		c += k.weight.At(i, q, r) * k.weight.At(j, q, r)
	}

	return c
}

// Ksub evaluates the weighted sum of latent blocks.
func (k *LMC) Ksub(i, j int, X1, X2 *matrix.Dense) (*matrix.Dense, error) {
	if err := k.CheckChannels(i, j); err != nil {
		return nil, err
	}
	a1, a2, err := k.ActivePair(X1, X2)
	if err != nil {
		return nil, err
	}
	if X2 == nil {
		a2 = nil
	}
	var out *matrix.Dense
	for q, sub := range k.kernels {
		Kq, err := sub.K(a1, a2)
		if err != nil {
			return nil, multioutputErrorf(k.Name(), err)
		}
		if Kq, err = matrix.Scale(Kq, k.coefficient(i, j, q)); err != nil {
			return nil, multioutputErrorf(k.Name(), err)
		}
		if out == nil {
			out = Kq
			continue
		}
		if out, err = matrix.Add(out, Kq); err != nil {
			return nil, multioutputErrorf(k.Name(), err)
		}
	}

	return out, nil
}

// KsubDiag evaluates Σ_q (Σ_r w_iqr²) · diag(K_q).
func (k *LMC) KsubDiag(i int, X1 *matrix.Dense) ([]float64, error) {
	if err := k.CheckChannels(i); err != nil {
		return nil, err
	}
	a1, err := k.ActiveInput(X1)
	if err != nil {
		return nil, err
	}
	out := make([]float64, a1.Rows())
	for q, sub := range k.kernels {
		d, err := sub.KDiag(a1)
		if err != nil {
			return nil, multioutputErrorf(k.Name(), err)
		}
		c := k.coefficient(i, i, q)
		for n, v := range d {
			out[n] += c * v
		}
	}

	return out, nil
}

// AssignNyquist bounds every spectral latent kernel by the smallest
// Nyquist frequency over the channels.
func (k *LMC) AssignNyquist(nyquist [][]float64) error {
	upper, err := minOverChannels(&k.Base, nyquist)
	if err != nil {
		return err
	}
	for _, sub := range k.kernels {
		if err = boundSpectral(sub, upper); err != nil {
			return multioutputErrorf(k.Name(), err)
		}
	}

	return nil
}

var (
	_ Kernel         = (*LMC)(nil)
	_ NyquistBounded = (*LMC)(nil)
)
