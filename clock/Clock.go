// Package clock provides a uniform current-instant API over sources that are
// not clocks themselves: plain functions, epoch millisecond feeds, fixed
// instants. The adapters are thin wrappers; they validate their source at
// construction and never modify what the source hands them.
package clock

import (
	"time"
)

// Clock is a readable source of the current instant.
//
// Implementations must be safe for concurrent use whenever their underlying
// source is, as a Clock is typically shared.
type Clock interface {
	// Now returns the current instant of the clock.
	Now() time.Time
}

// Of adapts a plain function into a Clock.
// Everything about the clock comes from the function: a fixed function makes
// a fixed clock, time.Now makes the system clock. The function must not be
// nil, and must never return the zero Time on its own behalf; whatever it
// returns is passed through untouched.
func Of(source func() time.Time) Clock {
	if source == nil {
		panic("clock: Of called with a nil source")
	}
	return funcClock(source)
}

type funcClock func() time.Time

func (fn funcClock) Now() time.Time { return fn() }

// Millis adapts an epoch millisecond source into a Clock in the given location.
// It serves time sources that only expose a millisecond counter, like most
// legacy timestamp feeds. Neither the source nor the location may be nil.
func Millis(source func() int64, loc *time.Location) Clock {
	if source == nil {
		panic("clock: Millis called with a nil source")
	}
	if loc == nil {
		panic("clock: Millis called with a nil location")
	}
	return Of(func() time.Time {
		return time.UnixMilli(source()).In(loc)
	})
}

// Fixed returns a Clock that always reports the same instant.
func Fixed(t time.Time) Clock {
	return Of(func() time.Time { return t })
}

// System returns a Clock backed by the wall clock in the given location.
func System(loc *time.Location) Clock {
	if loc == nil {
		panic("clock: System called with a nil location")
	}
	return Of(func() time.Time { return time.Now().In(loc) })
}
