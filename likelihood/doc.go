// SPDX-License-Identifier: MIT

// Package likelihood relates latent Gaussian process values f to
// observations y.
//
// Every family implements Likelihood: a support check on y, a pointwise log
// density, closed-form moments, a sampler and the predictive pipeline. The
// variational expectation ∫ log p(y|f) N(f; μ, σ²) df is approximated with
// Gauss-Hermite quadrature unless the family has a closed form (Gaussian).
//
// Families that need a positive or unit-interval parameter map the latent
// value through a Link (identity, square, exp, inverse probit, logistic).
//
// Shapes: y, μ and σ² are one value per data point; f is an N×M matrix with
// one row per data point and one column per quadrature node or sample.
// Moments that do not exist for the current parameters are NaN rather
// than errors.
//
// MultiOutput routes each row of a channel-augmented input to the
// likelihood of its channel and reassembles the results in row order.
package likelihood
