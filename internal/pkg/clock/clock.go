package clock

import "time"

// Clock abstracts time lookups so expiry logic can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// NewSystemClock creates a SystemClock.
func NewSystemClock() Clock {
	return &SystemClock{}
}

// Now returns the current system time.
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a controllable clock for tests.
type FakeClock struct {
	current time.Time
}

// NewFakeClock creates a FakeClock frozen at the given instant.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{current: start}
}

// Now returns the frozen instant.
func (f *FakeClock) Now() time.Time {
	return f.current
}

// Advance moves the clock forward by d.
func (f *FakeClock) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
