package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// Now returns the current instant in loc using the configured time provider.
func Now(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return nowFunc().In(loc)
}
