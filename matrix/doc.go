// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major storage shared by kernels,
// likelihoods and the joint covariance assembler.
//
// The matrix package provides:
//
//   - Dense, a cache-friendly row-major buffer with safe At/Set accessors
//     that return sentinel errors instead of panicking.
//   - Row gather/scatter (Induced, ScatterRows) used to move per-channel row
//     subsets of a channel-augmented input in and out of contiguous blocks.
//   - Element-wise and linear-algebra kernels (Add, Scale, Hadamard,
//     Transpose, Mul, Apply) with fast paths on *Dense.
//   - Validators (ValidateSymmetric, ValidateSquare, ...) and AllClose.
//
// Zero-sized shapes (0×k, k×0) are legal: a channel without observations is
// represented by an empty block, not by a nil matrix.
//
// NaN is a legitimate value in this module (undefined moments are reported as
// NaN). Finite-value validation is therefore opt-in via WithValidateNaNInf.
package matrix
