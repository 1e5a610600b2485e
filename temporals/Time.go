package temporals

import (
	"fmt"
	"time"

	"github.com/adamluzsi/timeseq"
)

// TimeOf returns the time of day at the given hour and minute.
// The hour must fall in [0,24) and the minute in [0,60); anything else is a
// programming error and makes TimeOf panic.
func TimeOf(hour, minute int) Time {
	if hour < 0 || 24 <= hour || minute < 0 || 60 <= minute {
		panic(fmt.Sprintf("temporals: invalid time of day %02d:%02d", hour, minute))
	}
	return Time{nanos: int64(hour)*nanosPerHour + int64(minute)*nanosPerMinute}
}

// Midnight is the first instant of the day.
var Midnight = Time{}

// Time is a time of day: a point on the cyclic 24 hour timeline, held with
// nanosecond resolution. The zero value is midnight.
//
// Time supports the units from Nanosecond up to HalfDay. Additions wrap
// around midnight, the way a wall clock does, while the natural order is the
// plain order of the day: midnight is the smallest value and 23:59:59.999...
// is the largest. The wrap is what makes ranges over a Time domain unable to
// end on midnight itself; see the streams package factories for the
// workaround the library uses.
type Time struct {
	nanos int64
}

const (
	nanosPerMinute = 60 * int64(time.Second)
	nanosPerHour   = 60 * nanosPerMinute
	nanosPerDay    = 24 * nanosPerHour
)

func (t Time) Hour() int   { return int(t.nanos / nanosPerHour) }
func (t Time) Minute() int { return int(t.nanos / nanosPerMinute % 60) }
func (t Time) Second() int { return int(t.nanos / int64(time.Second) % 60) }

// NanosOfDay returns the nanoseconds elapsed since midnight.
func (t Time) NanosOfDay() int64 { return t.nanos }

// Compare orders times of day from midnight towards the end of the day.
func (t Time) Compare(oth Time) int {
	switch {
	case t.nanos < oth.nanos:
		return -1
	case oth.nanos < t.nanos:
		return 1
	default:
		return 0
	}
}

// Supports reports whether the unit is usable with a time of day.
// Units of a day or longer have no meaning inside a single day.
func (t Time) Supports(u timeseq.Unit) bool {
	switch u {
	case timeseq.Nanosecond, timeseq.Microsecond, timeseq.Millisecond,
		timeseq.Second, timeseq.Minute, timeseq.Hour, timeseq.HalfDay:
		return true
	default:
		return false
	}
}

// Until returns the distance to oth in whole units of u,
// negative when oth is earlier in the day. No wrapping is involved:
// the distance from 23:00 to 01:00 is -22 hours, not +2.
func (t Time) Until(oth Time, u timeseq.Unit) int64 {
	if !t.Supports(u) {
		return 0
	}
	return (oth.nanos - t.nanos) / u.Duration().Nanoseconds()
}

// AddUnits returns the time of day n units of u later, wrapping around midnight.
func (t Time) AddUnits(u timeseq.Unit, n int64) (Time, error) {
	if !t.Supports(u) {
		return t, fmt.Errorf("%w: %s cannot be added to a time of day", timeseq.ErrUnsupportedUnit, u)
	}
	nanos := floorMod(t.nanos+n*u.Duration().Nanoseconds(), nanosPerDay)
	return Time{nanos: nanos}, nil
}

// Add returns the time of day advanced by every component of the step, wrapping around midnight.
func (t Time) Add(s timeseq.Step) (Time, error) {
	out := t
	for _, p := range s.Parts() {
		var err error
		out, err = out.AddUnits(p.Unit, p.N)
		if err != nil {
			return t, err
		}
	}
	return out, nil
}

func (t Time) String() string {
	if t.nanos%int64(time.Second) != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour(), t.Minute(), t.Second(), t.nanos%int64(time.Second))
	}
	if t.Second() != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
