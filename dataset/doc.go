// SPDX-License-Identifier: MIT

// Package dataset holds per-channel observations and the data-driven
// helpers that feed the kernel layer.
//
// A Channel is one output stream: an N×D input matrix and N outputs.
// Stack merges channels into the channel-augmented form consumed by
// multi-output kernels and likelihoods.
//
// NyquistEstimation bounds the meaningful frequency content of a channel
// by 0.5 over the smallest positive spacing between its inputs, per input
// dimension. The bounds feed multioutput.AssignNyquist.
//
// IPS draws independent initial values for spectral mixture components
// (weights from the output spread, means below the Nyquist bound, variances
// from the input range) and InitSpectralMixture writes them into a kernel
// built by multioutput.NewSpectralMixture.
//
// Sinusoid and Chirp generate deterministic synthetic channels for tests
// and demos, optionally irregularly sampled and noisy.
package dataset
