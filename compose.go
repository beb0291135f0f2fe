// SPDX-License-Identifier: GPL-3.0-or-later

package fun

// Then composes f and g into a [*Fun] that applies f and then g.
//
// Both f and g are consumed immediately but neither runs until the
// returned wrapper is invoked. Passing a consumed wrapper panics
// with [ErrConsumed].
func Then[A, B, C any](f *Fun[A, B], g *Fun[B, C]) *Fun[A, C] {
	first, second := f.take(), g.take()
	return New(func(input A) C {
		return second(first(input))
	})
}

// Identity returns a [*Fun] that returns its input unchanged.
//
// Composing with Identity on either side behaves like the other operand.
func Identity[A any]() *Fun[A, A] {
	return New(func(input A) A {
		return input
	})
}

// Apply binds a fixed input to f, returning a [*Fun] that takes [Unit] instead.
//
// The input is captured now; f runs only when the returned wrapper is invoked.
func Apply[A, B any](f *Fun[A, B], input A) *Fun[Unit, B] {
	fn := f.take()
	return New(func(Unit) B {
		return fn(input)
	})
}

// Const returns a [*Fun] that ignores its input and returns value.
func Const[B any](value B) *Fun[Unit, B] {
	return New(func(Unit) B {
		return value
	})
}

// Branch returns a [*Fun] that evaluates cond and then invokes either
// onTrue or onFalse with the same input.
//
// All three wrappers are consumed by Branch, even though only one of
// the two branches runs when the result is invoked.
func Branch[A, B any](cond *Fun[A, bool], onTrue, onFalse *Fun[A, B]) *Fun[A, B] {
	pred, yes, no := cond.take(), onTrue.take(), onFalse.take()
	return New(func(input A) B {
		if pred(input) {
			return yes(input)
		}
		return no(input)
	})
}
