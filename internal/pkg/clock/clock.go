// Package clock provides the production time source.
package clock

import "time"

// System reads the wall clock in UTC.
type System struct{}

func NewSystem() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant. Tests and tools that replay a
// moment in time use it in place of System.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}
