// SPDX-License-Identifier: MIT

package likelihood_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/mogp/likelihood"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestValidateYSupport(t *testing.T) {
	poisson, err := likelihood.NewPoisson()
	require.NoError(t, err)
	bernoulli, err := likelihood.NewBernoulli()
	require.NoError(t, err)
	beta, err := likelihood.NewBeta()
	require.NoError(t, err)
	exponential, err := likelihood.NewExponential()
	require.NoError(t, err)
	gamma, err := likelihood.NewGamma()
	require.NoError(t, err)
	gauss, err := likelihood.NewGaussian()
	require.NoError(t, err)

	cases := []struct {
		name string
		l    likelihood.Likelihood
		bad  []float64
		good []float64
	}{
		{"Poisson", poisson, []float64{1, 2, -1}, []float64{0, 1, 7}},
		{"PoissonFraction", poisson, []float64{1.5}, []float64{3}},
		{"Bernoulli", bernoulli, []float64{0, 1, 0.5}, []float64{0, 1, 1}},
		{"Beta", beta, []float64{0.0, 0.5}, []float64{0.1, 0.5, 0.9}},
		{"Exponential", exponential, []float64{-0.1}, []float64{0, 2}},
		{"Gamma", gamma, []float64{0}, []float64{0.5, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.l.ValidateY(tc.bad, nil), likelihood.ErrSupport)
			require.NoError(t, tc.l.ValidateY(tc.good, nil))
		})
	}

	require.NoError(t, gauss.ValidateY([]float64{-1e9, 0, 1e9}, nil))
}

func TestStudentTDegenerateMoments(t *testing.T) {
	f := column(-1, 0, 2.5)

	st1, err := likelihood.NewStudentT(likelihood.WithDoF(1))
	require.NoError(t, err)
	mean, err := st1.Mean(f, nil)
	require.NoError(t, err)
	for _, v := range mean.Data() {
		require.True(t, math.IsNaN(v))
	}
	variance, err := st1.Variance(f, nil)
	require.NoError(t, err)
	for _, v := range variance.Data() {
		require.True(t, math.IsNaN(v))
	}

	st3, err := likelihood.NewStudentT(likelihood.WithDoF(3), likelihood.WithScale(2))
	require.NoError(t, err)
	mean, err = st3.Mean(f, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 0, 2.5}, mean.Data())
	variance, err = st3.Variance(f, nil)
	require.NoError(t, err)
	for _, v := range variance.Data() {
		require.InDelta(t, 4*3.0/(3-2), v, 1e-12)
	}
}

func TestGaussianVariationalExpectationMatchesQuadrature(t *testing.T) {
	g, err := likelihood.NewGaussian(likelihood.WithScale(0.7), likelihood.WithQuadratures(20))
	require.NoError(t, err)

	y := []float64{0.3, -1.2, 2.0, 0}
	mu := []float64{0.1, -0.5, 1.0, 0}
	v := []float64{0.2, 1.5, 0.05, 3}
	closed, err := g.VariationalExpectation(y, mu, v, nil)
	require.NoError(t, err)
	quad, err := likelihood.ExpectLogProb(g, g.Quadrature(), y, mu, v, nil)
	require.NoError(t, err)
	require.InDelta(t, closed, quad, 1e-4)
}

func TestPoissonVariationalExpectation(t *testing.T) {
	p, err := likelihood.NewPoisson()
	require.NoError(t, err)

	y := []float64{0, 3, 1}
	mu := []float64{0.2, 1.1, -0.4}
	v := []float64{0.1, 0.5, 0.3}
	got, err := p.VariationalExpectation(y, mu, v, nil)
	require.NoError(t, err)

	var want float64
	for n := range y {
		lg, _ := math.Lgamma(y[n] + 1)
		want += y[n]*mu[n] - math.Exp(mu[n]+v[n]/2) - lg
	}
	require.InDelta(t, want, got, 1e-8)
}

func TestLogProbValues(t *testing.T) {
	f := column(0)

	exp, err := likelihood.NewExponential()
	require.NoError(t, err)
	lp, err := exp.LogProb([]float64{1}, f, nil)
	require.NoError(t, err)
	require.InDelta(t, -1, lp.Data()[0], 1e-12)

	poisson, err := likelihood.NewPoisson()
	require.NoError(t, err)
	lp, err = poisson.LogProb([]float64{2}, f, nil)
	require.NoError(t, err)
	require.InDelta(t, -math.Log(2)-1, lp.Data()[0], 1e-12)

	bern, err := likelihood.NewBernoulli(likelihood.WithLink(likelihood.Logistic))
	require.NoError(t, err)
	lp, err = bern.LogProb([]float64{1}, f, nil)
	require.NoError(t, err)
	require.InDelta(t, math.Log(0.5), lp.Data()[0], 1e-12)

	laplace, err := likelihood.NewLaplace(likelihood.WithScale(2))
	require.NoError(t, err)
	lp, err = laplace.LogProb([]float64{3}, column(1), nil)
	require.NoError(t, err)
	require.InDelta(t, -math.Log(4)-1, lp.Data()[0], 1e-12)

	chi, err := likelihood.NewChiSquared()
	require.NoError(t, err)
	lp, err = chi.LogProb([]float64{1}, column(2), nil)
	require.NoError(t, err)
	require.InDelta(t, -math.Log(2)-0.5, lp.Data()[0], 1e-12)
}

// Shape one collapses Gamma and Weibull onto the exponential.
func TestShapeOneFamiliesMatchExponential(t *testing.T) {
	y := []float64{0.5, 2, 4}
	f := column(-0.3, 0.4, 1.2)

	exp, err := likelihood.NewExponential()
	require.NoError(t, err)
	want, err := exp.LogProb(y, f, nil)
	require.NoError(t, err)

	gamma, err := likelihood.NewGamma(likelihood.WithShape(1))
	require.NoError(t, err)
	weibull, err := likelihood.NewWeibull(likelihood.WithShape(1))
	require.NoError(t, err)
	for _, l := range []likelihood.Likelihood{gamma, weibull} {
		got, err := l.LogProb(y, f, nil)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(want.Data(), got.Data(), cmpopts.EquateApprox(0, 1e-12)), l.Name())
	}
}

func TestMoments(t *testing.T) {
	gamma, err := likelihood.NewGamma(likelihood.WithShape(2))
	require.NoError(t, err)
	beta, err := likelihood.NewBeta()
	require.NoError(t, err)
	loglogistic, err := likelihood.NewLogLogistic(likelihood.WithShape(2))
	require.NoError(t, err)
	loglogistic4, err := likelihood.NewLogLogistic(likelihood.WithShape(4))
	require.NoError(t, err)
	chi, err := likelihood.NewChiSquared()
	require.NoError(t, err)
	lognormal, err := likelihood.NewLogGaussian()
	require.NoError(t, err)
	weibull, err := likelihood.NewWeibull(likelihood.WithShape(2))
	require.NoError(t, err)

	cases := []struct {
		name     string
		l        likelihood.Likelihood
		f        float64
		mean     float64
		variance float64
	}{
		{"Gamma", gamma, math.Log(3), 6, 18},
		{"Beta", beta, 0, 0.5, 0.125},
		{"LogLogistic", loglogistic, 0, math.Pi / 2, math.NaN()},
		{"LogLogistic4", loglogistic4, 0, (math.Pi / 4) / math.Sin(math.Pi/4), (math.Pi/2)/math.Sin(math.Pi/2) - math.Pow((math.Pi/4)/math.Sin(math.Pi/4), 2)},
		{"ChiSquared", chi, 3, 3, 6},
		{"LogGaussian", lognormal, 0, math.Exp(0.5), (math.E - 1) * math.E},
		{"Weibull", weibull, 0, math.Sqrt(math.Pi) / 2, 1 - math.Pi/4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := tc.l.Mean(column(tc.f), nil)
			require.NoError(t, err)
			require.InDelta(t, tc.mean, m.Data()[0], 1e-9)
			v, err := tc.l.Variance(column(tc.f), nil)
			require.NoError(t, err)
			if math.IsNaN(tc.variance) {
				require.True(t, math.IsNaN(v.Data()[0]))
				return
			}
			require.InDelta(t, tc.variance, v.Data()[0], 1e-9)
		})
	}
}

func TestSampleNotImplemented(t *testing.T) {
	ll, err := likelihood.NewLogLogistic()
	require.NoError(t, err)
	chi, err := likelihood.NewChiSquared()
	require.NoError(t, err)

	for _, l := range []likelihood.Likelihood{ll, chi} {
		_, err := l.Sample(column(1, 2), nil)
		require.ErrorIs(t, err, likelihood.ErrNotImplemented)
		_, err = l.Predict([]float64{1}, []float64{0.1}, nil, likelihood.WithCI(0.1, 0.9))
		require.ErrorIs(t, err, likelihood.ErrNotImplemented)
		_, err = l.Predict([]float64{1}, []float64{0.1}, nil)
		require.NoError(t, err)
	}
}

func TestShapeErrors(t *testing.T) {
	g, err := likelihood.NewGaussian()
	require.NoError(t, err)

	_, err = g.LogProb([]float64{1, 2}, column(0), nil)
	require.ErrorIs(t, err, likelihood.ErrShape)
	_, err = g.VariationalExpectation([]float64{1}, []float64{0, 1}, []float64{1, 1}, nil)
	require.ErrorIs(t, err, likelihood.ErrShape)
	_, err = g.Mean(nil, nil)
	require.ErrorIs(t, err, likelihood.ErrShape)
	_, err = g.Predict([]float64{1}, nil, nil)
	require.ErrorIs(t, err, likelihood.ErrShape)
}

func TestParameters(t *testing.T) {
	g, err := likelihood.NewGaussian(likelihood.WithScale(0.5))
	require.NoError(t, err)
	ps := g.Parameters()
	require.Len(t, ps, 1)
	require.Equal(t, "Gaussian.scale", ps[0].Name())
	require.Equal(t, 0.5, ps[0].Scalar())

	w, err := likelihood.NewWeibull(likelihood.WithName("lifetime"))
	require.NoError(t, err)
	require.Equal(t, "lifetime", w.Name())
	require.Equal(t, "lifetime.shape", w.Parameters()[0].Name())

	p, err := likelihood.NewPoisson()
	require.NoError(t, err)
	require.Empty(t, p.Parameters())
	require.Equal(t, likelihood.Exp, p.Link())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { likelihood.WithQuadratures(0) })
	require.Panics(t, func() { likelihood.WithScale(0) })
	require.Panics(t, func() { likelihood.WithShape(-1) })
	require.Panics(t, func() { likelihood.WithDoF(0) })
	require.Panics(t, func() { likelihood.WithLink(likelihood.Link(42)) })
	require.Panics(t, func() { likelihood.WithCI(0.9, 0.1) })
	require.Panics(t, func() { likelihood.WithSigma(0) })
	require.Panics(t, func() { likelihood.WithSamples(0) })
}

// SampleSuite checks the samplers of every family that has one.
type SampleSuite struct {
	suite.Suite
	f *matrix.Dense
}

func (s *SampleSuite) SetupTest() {
	var err error
	s.f, err = matrix.NewDenseFrom(3, 4, []float64{
		-0.5, 0, 0.5, 1,
		0.2, 0.4, 0.6, 0.8,
		-1, -0.5, 0.5, 1,
	})
	s.Require().NoError(err)
}

func (s *SampleSuite) families() map[string]func() (likelihood.Likelihood, error) {
	return map[string]func() (likelihood.Likelihood, error){
		"Gaussian":    func() (likelihood.Likelihood, error) { return likelihood.NewGaussian() },
		"StudentT":    func() (likelihood.Likelihood, error) { return likelihood.NewStudentT() },
		"Laplace":     func() (likelihood.Likelihood, error) { return likelihood.NewLaplace() },
		"LogGaussian": func() (likelihood.Likelihood, error) { return likelihood.NewLogGaussian() },
		"Exponential": func() (likelihood.Likelihood, error) { return likelihood.NewExponential() },
		"Gamma":       func() (likelihood.Likelihood, error) { return likelihood.NewGamma(likelihood.WithShape(2)) },
		"Weibull":     func() (likelihood.Likelihood, error) { return likelihood.NewWeibull(likelihood.WithShape(1.5)) },
		"Bernoulli":   func() (likelihood.Likelihood, error) { return likelihood.NewBernoulli() },
		"Beta":        func() (likelihood.Likelihood, error) { return likelihood.NewBeta(likelihood.WithScale(5)) },
		"Poisson":     func() (likelihood.Likelihood, error) { return likelihood.NewPoisson() },
	}
}

func (s *SampleSuite) TestShapeAndSupport() {
	for name, build := range s.families() {
		l, err := build()
		s.Require().NoError(err, name)
		out, err := l.Sample(s.f, nil)
		s.Require().NoError(err, name)
		s.Require().Equal(s.f.Rows(), out.Rows(), name)
		s.Require().Equal(s.f.Cols(), out.Cols(), name)
		for r := 0; r < out.Rows(); r++ {
			s.Require().NoError(l.ValidateY(out.RawRow(r), nil), name)
		}
	}
}

func (s *SampleSuite) TestDeterministicStreams() {
	for name, build := range s.families() {
		a, err := build()
		s.Require().NoError(err)
		b, err := build()
		s.Require().NoError(err)
		sa, err := a.Sample(s.f, nil)
		s.Require().NoError(err)
		sb, err := b.Sample(s.f, nil)
		s.Require().NoError(err)
		s.Require().Equal(sa.Data(), sb.Data(), name)
	}
}

func TestSampleSuite(t *testing.T) {
	suite.Run(t, new(SampleSuite))
}
