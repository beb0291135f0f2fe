// SPDX-License-Identifier: GPL-3.0-or-later

// Command fun doubles one and prints the result.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bassosimone/fun"
	"github.com/bassosimone/runtimex"
)

func main() {
	run(os.Stdout)
}

func run(w io.Writer) {
	double := fun.New(func(x uint64) uint64 { return x * 2 })
	runtimex.PanicOnError1(fmt.Fprintf(w, "Result: %d\n", double.Call(1)))
}
