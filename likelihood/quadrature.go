// SPDX-License-Identifier: MIT

package likelihood

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mogp/matrix"
	"gonum.org/v1/gonum/integrate/quad"
)

// GaussHermite holds deg nodes and weights for expectations under a
// standard normal: E[g(z)] ≈ Σ_k w_k g(t_k). It is immutable and safe to
// share.
type GaussHermite struct {
	nodes   []float64
	weights []float64
}

// NewGaussHermite computes a deg-point rule. The physicists' rule for
// e^{-x²} is rescaled by √2 (nodes) and 1/√π (weights).
func NewGaussHermite(deg int) (GaussHermite, error) {
	if deg < 1 {
		return GaussHermite{}, fmt.Errorf("quadrature degree %d: %w", deg, ErrShape)
	}
	t := make([]float64, deg)
	w := make([]float64, deg)
	quad.Hermite{}.FixedLocations(t, w, math.Inf(-1), math.Inf(1))
	for k := range t {
		t[k] *= math.Sqrt2
		w[k] /= math.Sqrt(math.Pi)
	}

	return GaussHermite{nodes: t, weights: w}, nil
}

// Degree returns the number of nodes.
func (q GaussHermite) Degree() int { return len(q.nodes) }

// Nodes returns a copy of the scaled nodes.
func (q GaussHermite) Nodes() []float64 { return append([]float64(nil), q.nodes...) }

// Weights returns a copy of the scaled weights; they sum to one.
func (q GaussHermite) Weights() []float64 { return append([]float64(nil), q.weights...) }

// Locations returns the N×deg matrix f[n,k] = μ_n + √σ²_n · t_k.
// ErrVariance when some σ²_n is negative or NaN.
func (q GaussHermite) Locations(mu, v []float64) (*matrix.Dense, error) {
	if err := checkMoments(mu, v); err != nil {
		return nil, err
	}
	out, err := matrix.NewDense(len(mu), len(q.nodes))
	if err != nil {
		return nil, err
	}
	for n := range mu {
		row := out.RawRow(n)
		s := math.Sqrt(v[n])
		for k, t := range q.nodes {
			row[k] = mu[n] + s*t
		}
	}

	return out, nil
}

// Expect approximates E[F(f)] per data point for f ~ N(μ, σ²). F receives
// the node locations and must return a matrix of the same shape.
func (q GaussHermite) Expect(mu, v []float64, F func(f *matrix.Dense) (*matrix.Dense, error)) ([]float64, error) {
	locs, err := q.Locations(mu, v)
	if err != nil {
		return nil, err
	}
	vals, err := F(locs)
	if err != nil {
		return nil, err
	}
	if vals.Rows() != locs.Rows() || vals.Cols() != locs.Cols() {
		return nil, ErrShape
	}
	out := make([]float64, len(mu))
	for n := range out {
		row := vals.RawRow(n)
		for k, w := range q.weights {
			out[n] += w * row[k]
		}
	}

	return out, nil
}

// checkMoments validates a latent posterior N(μ, σ²) given pointwise.
func checkMoments(mu, v []float64) error {
	if len(mu) != len(v) {
		return ErrShape
	}
	for n, x := range v {
		if !(x >= 0) {
			return fmt.Errorf("σ²[%d] = %g: %w", n, x, ErrVariance)
		}
	}

	return nil
}
