// SPDX-License-Identifier: MIT

// Package channel converts between per-channel data and the
// channel-augmented representation consumed by multi-output kernels.
//
// A channel-augmented input is a matrix whose rows are
// [channel_index, x_1, ..., x_D]. Merge stacks per-channel inputs (and
// optionally outputs) in channel order; Split is its exact inverse given the
// per-channel row counts. Indices partitions rows by the value in column 0;
// all selection is by channel index equality, never by position, so rows of
// different channels may be freely interleaved.
package channel
