package clock

import (
	"time"
)

// NewLegacy wraps a Clock with the conversions legacy call sites tend to
// need, so a single value can serve code that wants epoch seconds, epoch
// milliseconds and time.Time alike. The wrapped clock must not be nil.
func NewLegacy(c Clock) Legacy {
	if c == nil {
		panic("clock: NewLegacy called with a nil Clock")
	}
	return Legacy{clock: c}
}

// Legacy is a Clock with legacy representation accessors.
// It is immutable and safe for concurrent use whenever the wrapped clock is.
type Legacy struct {
	clock Clock
}

// Now returns the current instant of the wrapped clock.
func (l Legacy) Now() time.Time { return l.clock.Now() }

// Unix returns the current instant as epoch seconds.
func (l Legacy) Unix() int64 { return l.clock.Now().Unix() }

// UnixMilli returns the current instant as epoch milliseconds.
func (l Legacy) UnixMilli() int64 { return l.clock.Now().UnixMilli() }

// In returns a Legacy reporting the same instants in the given location.
// The location must not be nil.
func (l Legacy) In(loc *time.Location) Legacy {
	if loc == nil {
		panic("clock: Legacy.In called with a nil location")
	}
	base := l.clock
	return NewLegacy(Of(func() time.Time { return base.Now().In(loc) }))
}
