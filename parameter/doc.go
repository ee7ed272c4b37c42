// SPDX-License-Identifier: MIT

// Package parameter implements learnable values with optional bounds.
//
// A Parameter owns a flat float64 tensor with a shape, an optional lower and
// upper bound per element and a trainable flag. Its value can only change
// through Assign (or SetUnconstrained, the optimizer view of Assign); every
// write is clamped into the bounds. Fields are unexported, so rebinding a
// parameter of a kernel or likelihood is impossible from outside: owners
// expose parameters through getters and register them once in a Set.
//
// Unconstrained/SetUnconstrained map the bounded value to ℝ and back for an
// external gradient-based optimizer:
//
//	unbounded        x = u
//	lower only       x = lower + softplus(u)
//	upper only       x = upper - softplus(u)
//	lower and upper  x = lower + (upper-lower)·sigmoid(u)
package parameter
