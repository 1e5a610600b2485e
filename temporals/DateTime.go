package temporals

import (
	"fmt"
	"time"

	"github.com/adamluzsi/timeseq"
)

// DateTimeOf wraps a time.Time as a temporal point.
// The location of the time is kept and additions preserve it.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{t: t}
}

// DateTime is a point on the timeline with nanosecond resolution,
// a thin temporal wrapper around time.Time.
//
// DateTime supports every unit of the library. Distances in time based units
// count complete nominal durations between the two instants, while distances
// in Month and Year count whole calendar units. Calendar additions clamp to
// the end of the month.
type DateTime struct {
	t time.Time
}

// Time returns the wrapped time.Time value.
func (dt DateTime) Time() time.Time { return dt.t }

// Date returns the calendar date the instant falls on.
func (dt DateTime) Date() Date { return DateFromTime(dt.t) }

// Compare orders instants chronologically.
func (dt DateTime) Compare(oth DateTime) int {
	return dt.t.Compare(oth.t)
}

// Supports reports whether the unit is usable with an instant; all units of the library are.
func (dt DateTime) Supports(u timeseq.Unit) bool {
	return !u.IsZero()
}

// Until returns the distance to oth in whole units of u,
// negative when oth is earlier.
func (dt DateTime) Until(oth DateTime, u timeseq.Unit) int64 {
	switch u {
	case timeseq.Month:
		return dt.monthsUntil(oth)
	case timeseq.Year:
		return dt.monthsUntil(oth) / 12
	default:
		if u.IsZero() {
			return 0
		}
		return dt.nanosUntil(oth) / u.Duration().Nanoseconds()
	}
}

// AddUnits returns the instant n units of u later.
func (dt DateTime) AddUnits(u timeseq.Unit, n int64) (DateTime, error) {
	switch u {
	case timeseq.Day:
		return DateTime{t: dt.t.AddDate(0, 0, int(n))}, nil
	case timeseq.Week:
		return DateTime{t: dt.t.AddDate(0, 0, int(7*n))}, nil
	case timeseq.Month:
		return dt.addMonths(n), nil
	case timeseq.Year:
		return dt.addMonths(12 * n), nil
	default:
		if u.IsZero() {
			return dt, fmt.Errorf("%w: the zero Unit cannot be added to a DateTime", timeseq.ErrUnsupportedUnit)
		}
		return DateTime{t: dt.t.Add(time.Duration(n) * u.Duration())}, nil
	}
}

// Add returns the instant advanced by every component of the step, coarsest unit first.
func (dt DateTime) Add(s timeseq.Step) (DateTime, error) {
	out := dt
	for _, p := range s.Parts() {
		var err error
		out, err = out.AddUnits(p.Unit, p.N)
		if err != nil {
			return dt, err
		}
	}
	return out, nil
}

func (dt DateTime) String() string {
	return dt.t.Format(time.RFC3339Nano)
}

// nanosUntil avoids time.Time.Sub so spans longer than the time.Duration
// limit of roughly 292 years do not saturate.
func (dt DateTime) nanosUntil(oth DateTime) int64 {
	seconds := oth.t.Unix() - dt.t.Unix()
	nanos := int64(oth.t.Nanosecond() - dt.t.Nanosecond())
	return seconds*int64(time.Second) + nanos
}

func (dt DateTime) addMonths(n int64) DateTime {
	date := dt.Date().addMonths(n)
	hour, minute, sec := dt.t.Clock()
	return DateTime{t: time.Date(
		date.Year(), date.Month(), date.Day(),
		hour, minute, sec, dt.t.Nanosecond(),
		dt.t.Location(),
	)}
}

// monthsUntil counts whole calendar months, adjusting for the time of day of
// the two instants, truncating towards zero.
func (dt DateTime) monthsUntil(oth DateTime) int64 {
	months := dt.Date().monthsUntil(oth.Date())
	if 0 < months {
		anchor, err := dt.AddUnits(timeseq.Month, months)
		if err == nil && oth.Compare(anchor) < 0 {
			months--
		}
	}
	if months < 0 {
		anchor, err := dt.AddUnits(timeseq.Month, months)
		if err == nil && anchor.Compare(oth) < 0 {
			months++
		}
	}
	return months
}
