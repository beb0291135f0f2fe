// SPDX-License-Identifier: GPL-3.0-or-later

package fun

// Unit is a type not containing any value.
//
// Use this type to construct a [*Fun] that takes no argument
// or returns no value, as with [Const] and [Apply].
type Unit struct{}
