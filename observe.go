// SPDX-License-Identifier: GPL-3.0-or-later

package fun

import "log/slog"

// Observe consumes f and returns a [*Fun] that logs its invocation.
//
// The cfg argument contains the common configuration.
//
// The logger argument is the [SLogger] to use for structured logging.
//
// When invoked, the returned wrapper emits a callStart event before
// calling the wrapped function and a callDone event afterwards, both
// at [slog.LevelInfo]. Use [*slog.Logger.With] and [NewSpanID] to
// correlate the two events.
func Observe[A, B any](cfg *Config, logger SLogger, f *Fun[A, B]) *Fun[A, B] {
	fn := f.take()
	timeNow := cfg.TimeNow
	return New(func(input A) B {
		t0 := timeNow()
		logger.Info(
			"callStart",
			slog.Any("input", input),
			slog.Time("t", t0),
		)

		output := fn(input)

		logger.Info(
			"callDone",
			slog.Any("input", input),
			slog.Any("output", output),
			slog.Time("t0", t0),
			slog.Time("t", timeNow()),
		)
		return output
	})
}
