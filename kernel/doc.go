// SPDX-License-Identifier: MIT

// Package kernel implements single-output covariance functions and their
// composition algebra.
//
// Every kernel satisfies Kernel: K(X1, X2) returns the |X1|×|X2| covariance
// block (X2 == nil means X1 against itself) and KDiag(X1) its diagonal.
// Inputs are raw (no channel column). Base restricts them to the kernel's
// active dimensions before any distance is computed, so a kernel may
// operate on a subspace of a wider input.
//
// Families:
//
//	White, Constant, Linear, Polynomial            (non-stationary / trivial)
//	SquaredExponential, RationalQuadratic,
//	Exponential, Matern32, Matern52, Periodic      (stationary)
//	Cosine, Spectral                               (spectral)
//
// Composition: Add and Mul flatten nested sums and products; Mixture builds
// a sum of Q independently parameterized copies of a component.
//
// Parameters are registered once per kernel in a parameter.Set and exposed
// by getters; their only mutation path is Parameter.Assign.
package kernel
