// SPDX-License-Identifier: GPL-3.0-or-later

package fun

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 identifying a span.
//
// Here a span is the lifetime of a single invocation of an observed
// wrapper (see [Observe]), from callStart to callDone.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
