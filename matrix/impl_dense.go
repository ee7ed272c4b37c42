// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//   - Support copy-based row/column gathers (Induced) and the inverse row scatter.
//
// AI-Hints:
//   - Hot loops in kernels read rows through RawRow and write through Data; both alias storage.
//   - Use Induced(rows, nil) to materialize one channel's rows as a contiguous block.
//   - Use ScatterRows to write a block back at its original row positions.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRow     = "Row"
	ctxCol     = "Col"
	ctxInduce  = "Induced"
	ctxScatter = "ScatterRows"
	ctxFrom    = "NewDenseFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel survives errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero is legal.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer and resolve the numeric policy.
//
// Behavior highlights:
//   - 0×k and k×0 shapes are legal (empty channel blocks).
//
// Errors:
//   - ErrInvalidDimensions on negative dimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
// Returns ErrInvalidDimensions when len(data) != rows*cols, and ErrNaNInf
// when the policy rejects a non-finite entry.
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFrom, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxFrom, ErrInvalidDimensions)
	}
	if m.validateNaNInf {
		for idx, v := range data {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxFrom, idx/max(cols, 1), idx%max(cols, 1), ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// FromRows builds a matrix from a slice of equal-length rows.
// An empty slice yields a 0×0 matrix; ragged rows yield ErrDimensionMismatch.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return NewDense(0, 0)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, denseErrorf(ctxRow, i, len(row), ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewColumn returns an n×1 matrix holding a copy of v.
func NewColumn(v []float64) *Dense {
	data := make([]float64, len(v))
	copy(data, v)

	return &Dense{r: len(v), c: 1, data: data, validateNaNInf: DefaultValidateNaNInf}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1), no allocations.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v at (row, col).
// Errors: ErrOutOfRange on invalid indices; ErrNaNInf when the policy
// rejects non-finite values.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Data exposes the row-major backing slice. Writes through it bypass the
// numeric policy and are visible to m.
func (m *Dense) Data() []float64 { return m.data }

// RawRow returns row i as a slice aliasing storage. Callers guarantee
// 0 <= i < Rows(); no error path exists on this hot accessor.
func (m *Dense) RawRow(i int) []float64 { return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c] }

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.RawRow(i))

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Induced materializes the submatrix at the given row and column indices
// (a copy, in the order given). A nil rows or cols selects all of them.
//
// Implementation:
//   - Stage 1: resolve nil selectors and bounds-check every index.
//   - Stage 2: gather row by row into a fresh buffer.
//
// Errors:
//   - ErrOutOfRange when any index is outside bounds.
//
// Complexity:
//   - Time O(len(rows)*len(cols)), Space O(len(rows)*len(cols)).
//
// AI-Hints:
//   - Induced(idx, nil) is the per-channel gather of a channel-augmented input.
func (m *Dense) Induced(rows, cols []int) (*Dense, error) {
	for _, i := range rows {
		if i < 0 || i >= m.r {
			return nil, denseErrorf(ctxInduce, i, 0, ErrOutOfRange)
		}
	}
	for _, j := range cols {
		if j < 0 || j >= m.c {
			return nil, denseErrorf(ctxInduce, 0, j, ErrOutOfRange)
		}
	}
	nr, nc := len(rows), len(cols)
	if rows == nil {
		nr = m.r
	}
	if cols == nil {
		nc = m.c
	}
	out := &Dense{r: nr, c: nc, data: make([]float64, nr*nc), validateNaNInf: m.validateNaNInf}
	for a := 0; a < nr; a++ {
		src := a
		if rows != nil {
			src = rows[a]
		}
		srcRow := m.data[src*m.c : (src+1)*m.c]
		dstRow := out.data[a*nc : (a+1)*nc]
		if cols == nil {
			copy(dstRow, srcRow)
			continue
		}
		for b, j := range cols {
			dstRow[b] = srcRow[j]
		}
	}

	return out, nil
}

// ScatterRows writes row a of src into row rows[a] of dst, the inverse of
// dst.Induced(rows, nil). Row sets of different calls may be written
// concurrently when they are disjoint.
// Errors: ErrDimensionMismatch on column/length disagreement; ErrOutOfRange.
func ScatterRows(dst *Dense, rows []int, src *Dense) error {
	if dst == nil || src == nil {
		return matrixErrorf(ctxScatter, ErrNilMatrix)
	}
	if dst.c != src.c || len(rows) != src.r {
		return matrixErrorf(ctxScatter, ErrDimensionMismatch)
	}
	for a, i := range rows {
		if i < 0 || i >= dst.r {
			return denseErrorf(ctxScatter, i, 0, ErrOutOfRange)
		}
		copy(dst.data[i*dst.c:(i+1)*dst.c], src.data[a*src.c:(a+1)*src.c])
	}

	return nil
}

// SetBlock writes src into dst at the crossing of rows and cols, i.e.
// dst[rows[a], cols[b]] = src[a, b]. Used to tile covariance blocks.
func SetBlock(dst *Dense, rows, cols []int, src *Dense) error {
	if dst == nil || src == nil {
		return matrixErrorf("SetBlock", ErrNilMatrix)
	}
	if len(rows) != src.r || len(cols) != src.c {
		return matrixErrorf("SetBlock", ErrDimensionMismatch)
	}
	for a, i := range rows {
		if i < 0 || i >= dst.r {
			return denseErrorf("SetBlock", i, 0, ErrOutOfRange)
		}
		srcRow := src.data[a*src.c : (a+1)*src.c]
		base := i * dst.c
		for b, j := range cols {
			if j < 0 || j >= dst.c {
				return denseErrorf("SetBlock", i, j, ErrOutOfRange)
			}
			dst.data[base+j] = srcRow[b]
		}
	}

	return nil
}

// String implements fmt.Stringer: one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
