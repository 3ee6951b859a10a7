package clock

import "time"

// Clocker abstracts time so callers can replace real time in tests.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production clock implementation backed by time.Now.
type TimeClocker struct{}

// New returns a TimeClocker that reads the current system time.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// Fixed is a Clocker that always returns the same instant.
type Fixed time.Time

// NewFixed returns a Fixed clock pinned at t.
func NewFixed(t time.Time) Fixed {
	return Fixed(t)
}

// Now returns the pinned instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
