package service

import (
	"log/slog"
	"time"
)

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// Options carries what the time-dependent services share. Zero values fall back to
// UTC, the wall clock and slog.Default().
type Options struct {
	Location *time.Location
	Clock    Clock
	Logger   *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Clock == nil {
		o.Clock = SystemClock
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
