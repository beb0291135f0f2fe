// SPDX-License-Identifier: GPL-3.0-or-later

package fun_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bassosimone/fun"
)

// This example wraps a doubling function and invokes it once.
func Example() {
	double := fun.New(func(x uint64) uint64 { return x * 2 })

	fmt.Printf("Result: %d\n", double.Call(1))

	// Output:
	// Result: 2
}

// This example composes a doubling wrapper with an incrementing one.
// Nothing runs until the composed wrapper is invoked.
func ExampleThen() {
	double := fun.New(func(x int) int { return x * 2 })
	increment := fun.New(func(x int) int { return x + 1 })

	composed := fun.Then(double, increment)

	fmt.Printf("%d\n", composed.Call(3))

	// Output:
	// 7
}

// This example logs the invocation of a wrapper, tagging the
// events with a span ID so they can be correlated.
func ExampleObserve() {
	cfg := fun.NewConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("spanID", fun.NewSpanID())

	double := fun.Observe(cfg, logger, fun.New(func(x int) int { return x * 2 }))

	fmt.Printf("%d\n", double.Call(21))

	// Output:
	// 42
}
