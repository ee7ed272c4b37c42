// SPDX-License-Identifier: MIT

package joint

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mogp/matrix"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Sym copies a square matrix into a gonum symmetric matrix, reading the
// upper triangle. The matrix must be non-empty and symmetric within eps.
func Sym(K *matrix.Dense, eps float64) (*mat.SymDense, error) {
	if err := matrix.ValidateSymmetric(K, eps); err != nil {
		return nil, jointErrorf("Sym", fmt.Errorf("%w: %w", ErrNotSymmetric, err))
	}
	n := K.Rows()
	if n == 0 {
		return nil, jointErrorf("Sym", matrix.ErrInvalidDimensions)
	}
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		row := K.RawRow(i)
		for j := i; j < n; j++ {
			sym.SetSym(i, j, row[j])
		}
	}

	return sym, nil
}

// MinEigenvalue returns the smallest eigenvalue of a symmetric K
// (+Inf for an empty matrix).
func MinEigenvalue(K *matrix.Dense) (float64, error) {
	if K != nil && K.Rows() == 0 && K.Cols() == 0 {
		return math.Inf(1), nil
	}
	sym, err := Sym(K, matrix.DefaultEpsilon)
	if err != nil {
		return 0, err
	}
	var eig mat.EigenSym
	if !eig.Factorize(sym, false) {
		return 0, jointErrorf("MinEigenvalue", ErrEigen)
	}

	return eig.Values(nil)[0], nil
}

// IsPSD reports whether every eigenvalue of K is at least -tol.
func IsPSD(K *matrix.Dense, tol float64) (bool, error) {
	lambda, err := MinEigenvalue(K)
	if err != nil {
		return false, err
	}

	return lambda >= -tol, nil
}

// Cholesky factorizes K + jitter·I, multiplying jitter by 10 after each
// failure up to the configured number of attempts. It returns the factor
// and the jitter that succeeded (0 when K factorizes as is).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrJitter (jitter not
// finite and > 0), ErrNotSymmetric, ErrNotPSD.
func Cholesky(K *matrix.Dense, jitter float64, opts ...Option) (*mat.Cholesky, float64, error) {
	if err := matrix.ValidateSquare(K); err != nil {
		return nil, 0, jointErrorf("Cholesky", err)
	}
	if !(jitter > 0) || math.IsInf(jitter, 1) {
		return nil, 0, jointErrorf("Cholesky", fmt.Errorf("%g: %w", jitter, ErrJitter))
	}
	o := gatherOptions(opts...)
	sym, err := Sym(K, o.cfg.Epsilon())
	if err != nil {
		return nil, 0, err
	}
	var chol mat.Cholesky
	if chol.Factorize(sym) {
		return &chol, 0, nil
	}
	n := sym.SymmetricDim()
	for attempt := 0; attempt < o.attempts; attempt++ {
		shifted := mat.NewSymDense(n, nil)
		shifted.CopySym(sym)
		for i := 0; i < n; i++ {
			shifted.SetSym(i, i, shifted.At(i, i)+jitter)
		}
		if chol.Factorize(shifted) {
			o.cfg.Logger().Debug("cholesky succeeded with jitter",
				zap.Float64("jitter", jitter),
				zap.Int("attempt", attempt+1))
			return &chol, jitter, nil
		}
		jitter *= jitterGrowth
	}

	return nil, 0, jointErrorf("Cholesky", fmt.Errorf("after %d attempts: %w", o.attempts, ErrNotPSD))
}
