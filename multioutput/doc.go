// SPDX-License-Identifier: MIT

// Package multioutput implements multi-output covariance functions.
//
// A multi-output kernel describes the covariance between channels. Its
// contract is the block function Ksub(i, j, X1, X2): the covariance between
// the rows X1 of channel i and the rows X2 of channel j (X2 == nil means
// X1), with
//
//	Ksub(i, j, X1, X2) == Ksub(j, i, X2, X1)ᵀ
//
// and KsubDiag(i, X1) equal to the diagonal of Ksub(i, i, X1, nil). Inputs
// are raw (the channel column already stripped); the joint package gathers
// channel rows and tiles the blocks into a full covariance.
//
// Families (the joint covariance is PSD for any in-bound parameters unless
// noted):
//
//	Independent  block diagonal, one single-output kernel per channel
//	MOSM         multi-output spectral mixture (Parra & Tobar, 2017)
//	UMOSM        MOSM with cross magnitudes from L·Lᵀ, L lower triangular
//	CSM          cross spectral mixture with shared mean/variance (Ulrich et al., 2015)
//	LMC          linear model of coregionalization over Q base kernels
//	CONV         Gaussian convolution process (Álvarez & Lawrence, 2009)
//	MOHSM        harmonizable MOSM with a Gaussian envelope in (x+x')/2;
//	             PSD when the spectral variance dominates a quarter of the
//	             squared envelope lengthscale
//
// Sum and Mixture combine kernels of equal dimensions. AssignNyquist bounds
// every spectral mean by a per-channel Nyquist frequency, and
// NewSpectralMixture builds the independent spectral mixture model.
package multioutput
