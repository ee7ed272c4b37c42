// SPDX-License-Identifier: MIT
// Package matrix: element-wise helpers.
//
// Purpose:
//   - AllClose for tolerance-based comparisons in tests and PSD checks.
//   - Apply for pointwise transforms (link functions, exponentials of
//     distance tensors) without exposing storage.

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close, matching the IEEE convention.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances are ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	for idx := range da.data {
		if !(math.Abs(da.data[idx]-db.data[idx]) <= atol+rtol*math.Abs(db.data[idx])) {
			return false, nil
		}
	}

	return true, nil
}

// Apply returns a new matrix with out[i,j] = fn(m[i,j]).
func Apply(m Matrix, fn func(float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Apply", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("Apply", err)
	}
	res, _ := NewDense(d.r, d.c)
	for idx, v := range d.data {
		res.data[idx] = fn(v)
	}

	return res, nil
}
