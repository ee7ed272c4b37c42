// SPDX-License-Identifier: MIT

// Package joint assembles the dense covariance of a multi-output kernel over
// channel-augmented inputs.
//
// A channel-augmented matrix carries the channel index in column 0 and the
// inputs in the remaining columns; rows may be in any order. K partitions
// the rows by channel, asks the kernel for one block per pair of present
// channels and writes each block back at the original row and column
// positions. Blocks are independent, so WithWorkers spreads them over
// goroutines without changing the result.
//
// The package also carries the numerical checks a caller runs on the
// assembled matrix: MinEigenvalue, IsPSD and a Cholesky factorization with
// escalating diagonal jitter.
package joint
