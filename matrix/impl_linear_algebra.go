// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise sum and product, matrix multiplication, transpose and scalar
// scaling. All functions validate fail-fast and return sentinel errors on
// dimension mismatches.
//
// Notes:
//   - Every kernel allocates exactly one result and never mutates operands.
//   - *Dense operands unlock flat-slice fast paths; other Matrix values use At.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m as *Dense, materializing a copy through At when m is
// another Matrix implementation.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// zipWith applies fn element-wise over two same-shaped operands.
func zipWith(a, b Matrix, tag string, fn func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, _ := NewDense(da.r, da.c)
	for idx := range res.data {
		res.data[idx] = fn(da.data[idx], db.data[idx])
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	return zipWith(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Hadamard computes the element-wise product C = A ⊙ B.
// Product kernels compose through Hadamard: (k1·k2)(X) = K1 ⊙ K2.
func Hadamard(a, b Matrix) (*Dense, error) {
	return zipWith(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// Scale returns alpha·M. LMC weighs each latent covariance through it.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, _ := NewDense(d.r, d.c)
	for idx, v := range d.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate operands and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row-major strides, skipping zero A[i,k].
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := da.r, da.c, db.c
	res, _ := NewDense(aRows, bCols)

	var av float64
	for i := 0; i < aRows; i++ {
		rowA := da.data[i*aCols : (i+1)*aCols]
		rowR := res.data[i*bCols : (i+1)*bCols]
		for k := 0; k < aCols; k++ {
			av = rowA[k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB := db.data[k*bCols : (k+1)*bCols]
			for j := 0; j < bCols; j++ {
				rowR[j] += av * rowB[j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, _ := NewDense(d.c, d.r)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}
