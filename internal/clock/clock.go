package clock

import "time"

// Clock provides the current time for report timestamps.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// New returns the wall clock.
func New() System {
	return System{}
}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
