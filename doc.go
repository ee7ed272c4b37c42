// SPDX-License-Identifier: MIT

// Package mogp is a multi-output Gaussian process toolkit: covariance
// kernels that model several output channels jointly, the likelihoods that
// relate latent values to observations, and the channel bookkeeping that
// connects them.
//
// What is inside
//
//	• Channel stacking: per-channel data ⇄ one channel-augmented matrix
//	• Single-output kernels and their sum/product algebra
//	• Multi-output kernels: IMO, MOSM, uMOSM, CSM, LMC, CONV, MOHSM, SM
//	• Joint covariance assembly, PSD checks, jittered Cholesky
//	• Twelve likelihood families, Gauss-Hermite quadrature, per-channel routing
//	• Nyquist estimation, IPS initialisation, synthetic channels
//
// Packages, leaf to root:
//
//	config/       immutable numeric context: positivity floor, quadrature degree, seed, logger
//	matrix/       row-major Dense storage, gathers/scatters, validators, element-wise kernels
//	parameter/    bounded learnable values with Assign as the only mutation path
//	channel/      Merge/Split and channel partitioning of augmented inputs
//	kernel/       single-output kernels and composition
//	multioutput/  the block-covariance contract Ksub(i, j, X1, X2) and its families
//	joint/        caller-side assembly of the full covariance from Ksub blocks
//	likelihood/   p(y|f) families, variational expectations, predictive intervals
//	dataset/      per-channel observations, Nyquist bounds, initialisation, generators
//
// Data flow:
//
//	[]dataset.Channel ─Stack→ X (ΣN × 1+D) ─joint.K(multioutput kernel)→ K
//	posterior (μ, σ²) ─likelihood.MultiOutput→ log p, E_q[log p], predictions
//	─channel.Split→ per-channel results
//
//	go get github.com/katalvlaran/mogp
package mogp
