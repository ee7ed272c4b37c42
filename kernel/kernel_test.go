// SPDX-License-Identifier: MIT

package kernel_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/mogp/kernel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"
)

func randomInput(rng *rand.Rand, n, d int) *matrix.Dense {
	m, _ := matrix.NewDense(n, d)
	for i := range m.Data() {
		m.Data()[i] = 4 * rng.Float64()
	}

	return m
}

func minEigen(t *testing.T, K *matrix.Dense) float64 {
	t.Helper()
	n := K.Rows()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, _ := K.At(i, j)
			sym.SetSym(i, j, v)
		}
	}
	var eig mat.EigenSym
	require.True(t, eig.Factorize(sym, false))

	return eig.Values(nil)[0]
}

// KernelSuite checks the structural contract for every family.
type KernelSuite struct {
	suite.Suite
	rng     *rand.Rand
	kernels []kernel.Kernel
}

func (s *KernelSuite) SetupTest() {
	s.rng = rand.New(rand.NewPCG(11, 13))
	build := []func() (kernel.Kernel, error){
		func() (kernel.Kernel, error) { return kernel.NewSquaredExponential(2) },
		func() (kernel.Kernel, error) { return kernel.NewExponential(2) },
		func() (kernel.Kernel, error) { return kernel.NewMatern32(2) },
		func() (kernel.Kernel, error) { return kernel.NewMatern52(2) },
		func() (kernel.Kernel, error) { return kernel.NewRationalQuadratic(2) },
		func() (kernel.Kernel, error) { return kernel.NewPeriodic(2) },
		func() (kernel.Kernel, error) { return kernel.NewConstant(2) },
		func() (kernel.Kernel, error) { return kernel.NewLinear(2) },
		func() (kernel.Kernel, error) { return kernel.NewPolynomial(2, 2) },
		func() (kernel.Kernel, error) { return kernel.NewCosine(2) },
		func() (kernel.Kernel, error) { return kernel.NewSpectral(2) },
		func() (kernel.Kernel, error) { return kernel.NewWhite(2) },
	}
	s.kernels = nil
	for _, b := range build {
		k, err := b()
		s.Require().NoError(err)
		s.kernels = append(s.kernels, k)
	}
}

func (s *KernelSuite) TestSymmetry() {
	X1, X2 := randomInput(s.rng, 5, 2), randomInput(s.rng, 3, 2)
	for _, k := range s.kernels {
		K12, err := k.K(X1, X2)
		s.Require().NoError(err, k.Name())
		K21, err := k.K(X2, X1)
		s.Require().NoError(err, k.Name())
		K21t, _ := matrix.Transpose(K21)
		ok, _ := matrix.AllClose(K12, K21t, 0, 1e-12)
		s.True(ok, k.Name())
	}
}

func (s *KernelSuite) TestDiagonalConsistency() {
	X := randomInput(s.rng, 6, 2)
	for _, k := range s.kernels {
		K, err := k.K(X, nil)
		s.Require().NoError(err, k.Name())
		diag, err := k.KDiag(X)
		s.Require().NoError(err, k.Name())
		full := diagonal(K)
		s.InDeltaSlice(full, diag, 1e-12, k.Name())
	}
}

func (s *KernelSuite) TestPositiveSemiDefinite() {
	X := randomInput(s.rng, 8, 2)
	for _, k := range s.kernels {
		K, err := k.K(X, nil)
		s.Require().NoError(err, k.Name())
		s.GreaterOrEqual(minEigen(s.T(), K), -1e-8, k.Name())
	}
}

func (s *KernelSuite) TestWrongColumns() {
	X := randomInput(s.rng, 2, 3)
	for _, k := range s.kernels {
		_, err := k.K(X, nil)
		s.ErrorIs(err, kernel.ErrDims, k.Name())
		_, err = k.KDiag(nil)
		s.ErrorIs(err, kernel.ErrNilInput, k.Name())
	}
}

func TestKernelSuite(t *testing.T) {
	suite.Run(t, new(KernelSuite))
}

func TestSquaredExponentialValues(t *testing.T) {
	k, err := kernel.NewSquaredExponential(1)
	require.NoError(t, err)
	require.NoError(t, k.Magnitude().Assign([]float64{2}))
	require.NoError(t, k.Lengthscale().Assign([]float64{0.5}))

	X1, _ := matrix.FromRows([][]float64{{0}, {1}})
	X2, _ := matrix.FromRows([][]float64{{0.5}})
	K, err := k.K(X1, X2)
	require.NoError(t, err)
	want := 2 * math.Exp(-0.5)
	require.InDeltaSlice(t, []float64{want, want}, K.Data(), 1e-15)
}

func TestSpectralValue(t *testing.T) {
	k, err := kernel.NewSpectral(1)
	require.NoError(t, err)
	require.NoError(t, k.MeanParameter().Assign([]float64{0.25}))
	require.NoError(t, k.Variance().Assign([]float64{0.1}))

	X1, _ := matrix.FromRows([][]float64{{1}})
	X2, _ := matrix.FromRows([][]float64{{0}})
	K, err := k.K(X1, X2)
	require.NoError(t, err)
	want := math.Exp(-2*math.Pi*math.Pi*0.1) * math.Cos(2*math.Pi*0.25)
	require.InDelta(t, want, K.Data()[0], 1e-15)
}

func TestWhiteCrossIsZero(t *testing.T) {
	k, _ := kernel.NewWhite(1)
	X, _ := matrix.FromRows([][]float64{{0}, {1}})
	K, err := k.K(X, X)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0, 0}, K.Data())
	K, err = k.K(X, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 1}, K.Data())
}

func TestActiveDims(t *testing.T) {
	k, err := kernel.NewSquaredExponential(1, kernel.WithActiveDims(2))
	require.NoError(t, err)
	full, _ := kernel.NewSquaredExponential(1)

	X, _ := matrix.FromRows([][]float64{{9, 9, 0}, {-9, 3, 1}})
	sub, _ := X.Induced(nil, []int{2})
	K, err := k.K(X, nil)
	require.NoError(t, err)
	Kref, err := full.K(sub, nil)
	require.NoError(t, err)
	require.Equal(t, Kref.Data(), K.Data())

	_, err = kernel.NewSquaredExponential(2, kernel.WithActiveDims(0))
	require.ErrorIs(t, err, kernel.ErrDims)

	narrow, _ := matrix.FromRows([][]float64{{1, 2}})
	_, err = k.K(narrow, nil)
	require.ErrorIs(t, err, kernel.ErrDims)
}

func TestParameterNames(t *testing.T) {
	k, err := kernel.NewRationalQuadratic(1, kernel.WithName("RQ"))
	require.NoError(t, err)
	var names []string
	for _, p := range k.Parameters() {
		names = append(names, p.Name())
	}
	require.Equal(t, []string{"RQ.magnitude", "RQ.lengthscale", "RQ.alpha"}, names)
}

func TestCompositionFlattens(t *testing.T) {
	a, _ := kernel.NewSquaredExponential(1)
	b, _ := kernel.NewPeriodic(1)
	c, _ := kernel.NewConstant(1)

	ab, err := kernel.Add(a, b)
	require.NoError(t, err)
	abc, err := kernel.Add(ab, c)
	require.NoError(t, err)
	require.Len(t, abc.Parts(), 3)
	require.Len(t, abc.Parameters(), 6)

	X, _ := matrix.FromRows([][]float64{{0}, {0.3}, {1.2}})
	Ka, _ := a.K(X, nil)
	Kb, _ := b.K(X, nil)
	Kc, _ := c.K(X, nil)
	sum, err := abc.K(X, nil)
	require.NoError(t, err)
	for i := range sum.Data() {
		require.InDelta(t, Ka.Data()[i]+Kb.Data()[i]+Kc.Data()[i], sum.Data()[i], 1e-14)
	}

	prod, err := kernel.Mul(a, b)
	require.NoError(t, err)
	Kp, err := prod.K(X, nil)
	require.NoError(t, err)
	for i := range Kp.Data() {
		require.InDelta(t, Ka.Data()[i]*Kb.Data()[i], Kp.Data()[i], 1e-14)
	}
	diag, err := prod.KDiag(X)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, 1}, diag, 1e-14)

	_, err = kernel.Add()
	require.ErrorIs(t, err, kernel.ErrEmpty)
	_, err = kernel.Mul(a, nil)
	require.ErrorIs(t, err, kernel.ErrNilKernel)
	wide, _ := kernel.NewConstant(2)
	_, err = kernel.Add(a, wide)
	require.ErrorIs(t, err, kernel.ErrDims)
}

func TestMixture(t *testing.T) {
	m, err := kernel.Mixture(3, func(_ int, opts ...kernel.Option) (kernel.Kernel, error) {
		return kernel.NewSpectral(1, opts...)
	})
	require.NoError(t, err)
	require.Equal(t, "Mixture", m.Name())
	require.Len(t, m.Parts(), 3)
	require.Equal(t, "Spectral.2", m.Parts()[2].Name())
	require.NoError(t, kernel.UniqueNames(m.Parameters()))

	diag, err := m.KDiag(matrix.NewColumn([]float64{0, 1}))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 3}, diag, 1e-14)

	_, err = kernel.Mixture(0, nil)
	require.ErrorIs(t, err, kernel.ErrEmpty)
}

func TestMixtureNamesComponents(t *testing.T) {
	m, err := kernel.Mixture(2, func(_ int, opts ...kernel.Option) (kernel.Kernel, error) {
		return kernel.NewSquaredExponential(1, append(opts, kernel.WithName("Trend"))...)
	})
	require.NoError(t, err)
	var got []string
	for _, p := range m.Parameters() {
		got = append(got, p.Name())
	}
	require.Equal(t, []string{
		"Trend.0.magnitude", "Trend.0.lengthscale",
		"Trend.1.magnitude", "Trend.1.lengthscale",
	}, got)

	// A component that drops the options collides with its siblings.
	_, err = kernel.Mixture(2, func(int, ...kernel.Option) (kernel.Kernel, error) {
		return kernel.NewSpectral(1)
	})
	require.ErrorIs(t, err, parameter.ErrDuplicate)
}

func diagonal(K *matrix.Dense) []float64 {
	d := make([]float64, K.Rows())
	for i := range d {
		d[i] = K.RawRow(i)[i]
	}

	return d
}
