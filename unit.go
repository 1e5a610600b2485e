package timeseq

import (
	"time"
)

// Unit is a named granularity of the timeline.
//
// Every unit carries a nominal duration expressed in nanoseconds.
// For calendar units such as Month or Year the nominal duration is an average
// over the instances of the unit, and DurationEstimated reports true for them.
// Estimation based calculations that involve such a unit inherit the imprecision.
type Unit struct {
	name      string
	duration  time.Duration
	estimated bool
}

// The standard units of the library, ordered from the finest granularity to the coarsest.
//
// Month and Year use the average length of the ISO calendar instances
// (a year is 365.2425 days, a month is a twelfth of that), and are flagged as estimated.
var (
	Nanosecond  = Unit{name: "Nanosecond", duration: time.Nanosecond}
	Microsecond = Unit{name: "Microsecond", duration: time.Microsecond}
	Millisecond = Unit{name: "Millisecond", duration: time.Millisecond}
	Second      = Unit{name: "Second", duration: time.Second}
	Minute      = Unit{name: "Minute", duration: time.Minute}
	Hour        = Unit{name: "Hour", duration: time.Hour}
	HalfDay     = Unit{name: "HalfDay", duration: 12 * time.Hour}
	Day         = Unit{name: "Day", duration: 24 * time.Hour}
	Week        = Unit{name: "Week", duration: 7 * 24 * time.Hour}
	Month       = Unit{name: "Month", duration: yearDuration / 12, estimated: true}
	Year        = Unit{name: "Year", duration: yearDuration, estimated: true}
)

// yearDuration is the average length of an ISO calendar year (365.2425 days).
const yearDuration = 31556952 * time.Second

// Units returns the standard units ordered from the finest granularity to the coarsest.
func Units() []Unit {
	return []Unit{
		Nanosecond,
		Microsecond,
		Millisecond,
		Second,
		Minute,
		Hour,
		HalfDay,
		Day,
		Week,
		Month,
		Year,
	}
}

// Duration returns the nominal duration of a single unit.
// When DurationEstimated reports true, the returned duration is an average, not an exact length.
func (u Unit) Duration() time.Duration { return u.duration }

// DurationEstimated reports whether the duration of the unit varies between instances,
// like the length of a Month does.
func (u Unit) DurationEstimated() bool { return u.estimated }

// IsZero reports whether the unit is the uninitialized zero value.
func (u Unit) IsZero() bool { return u == Unit{} }

func (u Unit) String() string {
	if u.IsZero() {
		return "Unit{}"
	}
	return u.name
}
