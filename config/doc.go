// SPDX-License-Identifier: MIT

// Package config carries the process-wide numeric context shared by every
// kernel and likelihood of the mogp module.
//
// A Config is built once (New, Default or Load) and then passed explicitly to
// constructors. It is immutable after construction, so a single value may be
// shared freely between goroutines.
//
// The context holds:
//
//   - PositiveMinimum: the floor applied to every strictly positive parameter
//     (variances, magnitudes, weights, lengthscales).
//   - Quadratures: the default Gauss-Hermite degree of likelihoods.
//   - Seed: the root of every deterministic random stream (NewRand).
//   - Epsilon: the numeric tolerance used by symmetry and PSD checks.
//   - Logger: a *zap.Logger, zap.NewNop by default.
package config
