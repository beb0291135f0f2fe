// SPDX-License-Identifier: GPL-3.0-or-later

package fun

import (
	"errors"
	"sync/atomic"

	"github.com/bassosimone/runtimex"
)

// ErrConsumed is the panic value used when a [*Fun] is used after
// having already been invoked or composed.
var ErrConsumed = errors.New("fun: wrapper already consumed")

// Fun wraps a function from A to B that can be used exactly once.
//
// Using a Fun means either invoking it with [*Fun.Call] or passing it to
// a combinator such as [Then]. Both take ownership of the wrapper: any
// further use panics with [ErrConsumed].
//
// Construct using [New].
type Fun[A, B any] struct {
	fn       func(A) B
	consumed atomic.Bool
}

// New returns a new [*Fun] wrapping fn.
//
// The fn argument must not be nil. Values captured by fn must remain
// valid until the returned wrapper is consumed.
func New[A, B any](fn func(A) B) *Fun[A, B] {
	runtimex.Assert(fn != nil)
	return &Fun[A, B]{fn: fn}
}

// Call consumes f and applies the wrapped function to input.
func (f *Fun[A, B]) Call(input A) B {
	return f.take()(input)
}

// Consumed returns whether f has already been invoked or composed.
func (f *Fun[A, B]) Consumed() bool {
	return f.consumed.Load()
}

// take marks f as consumed and returns the wrapped function.
func (f *Fun[A, B]) take() func(A) B {
	if !f.consumed.CompareAndSwap(false, true) {
		panic(ErrConsumed)
	}
	fn := f.fn
	f.fn = nil
	return fn
}
