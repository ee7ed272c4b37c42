// SPDX-License-Identifier: MIT

package likelihood

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/mogp/config"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// base carries what the families share: name, link, quadrature rule,
// parameters and the sampling stream. It holds a mutex and must not be
// copied after construction.
type base struct {
	name   string
	link   Link
	quad   GaussHermite
	params *parameter.Set
	cfg    *config.Config
	logger *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func (b *base) setup(defaultName string, defaultLink Link, o options) error {
	b.name = defaultName
	if o.name != "" {
		b.name = o.name
	}
	b.link = defaultLink
	if o.linkSet {
		b.link = o.link
	}
	q, err := NewGaussHermite(o.quadratures)
	if err != nil {
		return likelihoodErrorf(b.name, err)
	}
	b.quad = q
	b.cfg = o.cfg
	b.params = parameter.NewSet(b.name)
	b.logger = o.cfg.Logger().Named("likelihood." + strings.ToLower(b.name))
	b.rng = o.cfg.NewRand(b.name + ".sample")

	return nil
}

// Name returns the family name.
func (b *base) Name() string { return b.name }

// Link returns the link function.
func (b *base) Link() Link { return b.link }

// Quadrature returns the Gauss-Hermite rule.
func (b *base) Quadrature() GaussHermite { return b.quad }

// Parameters lists the registered parameters.
func (b *base) Parameters() []*parameter.Parameter { return b.params.All() }

// positive registers a scalar parameter bounded below by the positive minimum.
func (b *base) positive(name string, v float64) (*parameter.Parameter, error) {
	p, err := parameter.Scalar(v,
		parameter.WithLower(b.cfg.PositiveMinimum()),
		parameter.WithLogger(b.logger))
	if err != nil {
		return nil, likelihoodErrorf(b.name, err)
	}
	if err = b.params.Register(name, p); err != nil {
		return nil, likelihoodErrorf(b.name, err)
	}

	return p, nil
}

// support checks every y against ok.
func (b *base) support(y []float64, ok func(float64) bool, want string) error {
	for n, v := range y {
		if !ok(v) {
			return likelihoodErrorf(b.name, fmt.Errorf("y[%d]=%g, want %s: %w", n, v, want, ErrSupport))
		}
	}

	return nil
}

// pointwise returns out[n,m] = fn(n, f[n,m]).
func (b *base) pointwise(f *matrix.Dense, fn func(n int, x float64) float64) (*matrix.Dense, error) {
	if f == nil {
		return nil, likelihoodErrorf(b.name, ErrShape)
	}
	out, err := matrix.NewDense(f.Rows(), f.Cols())
	if err != nil {
		return nil, likelihoodErrorf(b.name, err)
	}
	for n := 0; n < f.Rows(); n++ {
		src, dst := f.RawRow(n), out.RawRow(n)
		for m, x := range src {
			dst[m] = fn(n, x)
		}
	}

	return out, nil
}

// logProb checks len(y) against f and applies fn(y_n, f[n,m]).
func (b *base) logProb(y []float64, f *matrix.Dense, fn func(y, f float64) float64) (*matrix.Dense, error) {
	if f == nil || len(y) != f.Rows() {
		return nil, likelihoodErrorf(b.name, ErrShape)
	}

	return b.pointwise(f, func(n int, x float64) float64 { return fn(y[n], x) })
}

// sample draws out[n,m] = draw(f[n,m], src) under the sampling lock.
func (b *base) sample(f *matrix.Dense, draw func(x float64, src rand.Source) float64) (*matrix.Dense, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.pointwise(f, func(_ int, x float64) float64 { return draw(x, b.rng) })
}

// ExpectLogProb approximates Σ_n ∫ log p(y_n|f) N(f; μ_n, σ²_n) df with the
// rule q. It is the default variational expectation of every family.
func ExpectLogProb(l Likelihood, q GaussHermite, y, mu, v []float64, X *matrix.Dense) (float64, error) {
	if len(y) != len(mu) || len(mu) != len(v) {
		return 0, likelihoodErrorf(l.Name(), ErrShape)
	}
	e, err := q.Expect(mu, v, func(f *matrix.Dense) (*matrix.Dense, error) {
		return l.LogProb(y, f, X)
	})
	if err != nil {
		return 0, err
	}

	return floats.Sum(e), nil
}

// predict is the default pipeline: the quadrature expectation of Mean and,
// when requested, nearest-rank quantiles of Monte-Carlo samples pushed
// through l.Sample.
func (b *base) predict(l Likelihood, mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	if err := checkMoments(mu, v); err != nil {
		return Prediction{}, likelihoodErrorf(b.name, err)
	}
	o := gatherPredictOptions(opts...)
	mean, err := b.quad.Expect(mu, v, func(f *matrix.Dense) (*matrix.Dense, error) {
		return l.Mean(f, X)
	})
	if err != nil {
		return Prediction{}, err
	}
	pred := Prediction{Mean: mean}
	if !o.interval() {
		return pred, nil
	}

	lo, hi := o.ci[0], o.ci[1]
	if !o.hasCI {
		lo, hi = distuv.UnitNormal.CDF(-o.sigma), distuv.UnitNormal.CDF(o.sigma)
	}
	S := o.samples
	latent, err := matrix.NewDense(len(mu), S)
	if err != nil {
		return Prediction{}, likelihoodErrorf(b.name, err)
	}
	b.mu.Lock()
	for n := range mu {
		dist := distuv.Normal{Mu: mu[n], Sigma: math.Sqrt(v[n]), Src: b.rng}
		row := latent.RawRow(n)
		for s := range row {
			row[s] = dist.Rand()
		}
	}
	b.mu.Unlock()

	ys, err := l.Sample(latent, X)
	if err != nil {
		return Prediction{}, err
	}
	iLo, iHi := quantileIndex(lo, S), quantileIndex(hi, S)
	pred.Lower = make([]float64, len(mu))
	pred.Upper = make([]float64, len(mu))
	for n := range mu {
		row := append([]float64(nil), ys.RawRow(n)...)
		sort.Float64s(row)
		pred.Lower[n], pred.Upper[n] = row[iLo], row[iHi]
	}
	b.logger.Debug("monte carlo predictive interval",
		zap.Int("points", len(mu)),
		zap.Int("samples", S),
		zap.Float64("lower", lo),
		zap.Float64("upper", hi))

	return pred, nil
}

// quantileIndex is the nearest rank int(p·n + 0.5) clamped into [0, n-1].
func quantileIndex(p float64, n int) int {
	return min(max(int(p*float64(n)+0.5), 0), n-1)
}

