package engine

import "time"

// Clock reports the current time. Engines never start their own timers;
// they only read the clock when the caller starts, responds, or advances.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
