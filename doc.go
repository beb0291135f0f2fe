// SPDX-License-Identifier: GPL-3.0-or-later

// Package fun provides single-use, composable function wrappers.
//
// # Core Abstraction
//
// The package is built around a single type:
//
//	type Fun[A, B any] struct { ... }
//
// A [*Fun] owns a function from A to B captured by [New]. It can be used
// exactly once: either invoke it with [*Fun.Call] or hand it to a
// combinator such as [Then], which takes ownership and returns a new
// wrapper. The compiler checks that composed types line up.
//
// # Consume-on-use
//
// Go cannot move values out of a binding, so ownership transfer is
// tracked at runtime. Every wrapper carries a flag that the first use
// flips atomically. Using a wrapper a second time panics with
// [ErrConsumed]. Use [*Fun.Consumed] to check without consuming.
//
// # Combinators
//
//   - [Then]: apply one wrapper and then another
//   - [Identity]: the neutral element of [Then]
//   - [Apply]: bind a fixed input to a wrapper
//   - [Const]: lift a value into a wrapper taking [Unit]
//   - [Branch]: pick one of two wrappers using a predicate wrapper
//   - [Observe]: log the invocation of a wrapper
//
// Combinators never run the wrappers they consume. Work happens only
// when the resulting wrapper is invoked.
//
// # Observability
//
// By default nothing is logged. [Observe] emits callStart and callDone
// events through an [SLogger], which [*slog.Logger] satisfies. Attach a
// span ID created with [NewSpanID] using [*slog.Logger.With] to correlate
// the events of a single invocation.
package fun
