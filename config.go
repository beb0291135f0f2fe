// SPDX-License-Identifier: GPL-3.0-or-later

package fun

import "time"

// Config holds common configuration for wrappers that need it.
//
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		TimeNow: time.Now,
	}
}
