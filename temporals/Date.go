package temporals

import (
	"fmt"
	"time"

	"github.com/adamluzsi/timeseq"
)

// DateOf returns the calendar date of the given year, month and day in the ISO calendar.
// Out of range values are normalized the same way time.Date normalizes them,
// so DateOf(2020, time.January, 32) is the 1st of February 2020.
func DateOf(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{year: y, month: m, day: d}
}

// DateFromTime returns the calendar date the given time falls on, in the location of the time.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Date is a calendar date of the ISO calendar, without a time of day and without a location.
// The zero value is the 1st of January of year 0.
//
// Date supports the Day, Week, Month and Year units.
type Date struct {
	year  int
	month time.Month
	day   int
}

func (d Date) Year() int { return d.year }

func (d Date) Month() time.Month {
	if d.month == 0 {
		return time.January
	}
	return d.month
}

func (d Date) Day() int {
	if d.day == 0 {
		return 1
	}
	return d.day
}

// Weekday returns the day of the week the date falls on.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).Weekday()
}

// Compare orders dates chronologically.
func (d Date) Compare(oth Date) int {
	switch a, b := d.epochDays(), oth.epochDays(); {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

// Supports reports whether the unit is usable with a calendar date.
// Units finer than a day have no meaning for a Date.
func (d Date) Supports(u timeseq.Unit) bool {
	switch u {
	case timeseq.Day, timeseq.Week, timeseq.Month, timeseq.Year:
		return true
	default:
		return false
	}
}

// Until returns the distance to oth in whole units of u,
// negative when oth is an earlier date.
func (d Date) Until(oth Date, u timeseq.Unit) int64 {
	switch u {
	case timeseq.Day:
		return oth.epochDays() - d.epochDays()
	case timeseq.Week:
		return (oth.epochDays() - d.epochDays()) / 7
	case timeseq.Month:
		return d.monthsUntil(oth)
	case timeseq.Year:
		return d.monthsUntil(oth) / 12
	default:
		return 0
	}
}

// AddUnits returns the date n units of u later.
func (d Date) AddUnits(u timeseq.Unit, n int64) (Date, error) {
	switch u {
	case timeseq.Day:
		return d.addDays(n), nil
	case timeseq.Week:
		return d.addDays(7 * n), nil
	case timeseq.Month:
		return d.addMonths(n), nil
	case timeseq.Year:
		return d.addMonths(12 * n), nil
	default:
		return d, fmt.Errorf("%w: %s cannot be added to a Date", timeseq.ErrUnsupportedUnit, u)
	}
}

// Add returns the date advanced by every component of the step, coarsest unit first.
func (d Date) Add(s timeseq.Step) (Date, error) {
	out := d
	for _, p := range s.Parts() {
		var err error
		out, err = out.AddUnits(p.Unit, p.N)
		if err != nil {
			return d, err
		}
	}
	return out, nil
}

// AtStartOfDay returns the midnight of the date in UTC.
func (d Date) AtStartOfDay() DateTime {
	return DateTimeOf(time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC))
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}

func (d Date) epochDays() int64 {
	t := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return floorDiv(t.Unix(), secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

func (d Date) addDays(n int64) Date {
	return DateOf(d.Year(), d.Month(), d.Day()+int(n))
}

// addMonths keeps the day of month and clamps it to the length of the target month.
func (d Date) addMonths(n int64) Date {
	total := int64(d.Year())*12 + int64(d.Month()-1) + n
	year := int(floorDiv(total, 12))
	month := time.Month(floorMod(total, 12) + 1)
	day := d.Day()
	if last := daysIn(year, month); last < day {
		day = last
	}
	return Date{year: year, month: month, day: day}
}

// monthsUntil counts the whole months between the two dates, truncating towards zero.
func (d Date) monthsUntil(oth Date) int64 {
	months := int64(oth.Year()-d.Year())*12 + int64(oth.Month()-d.Month())
	if 0 < months && oth.Day() < d.Day() {
		months--
	}
	if months < 0 && d.Day() < oth.Day() {
		months++
	}
	return months
}

// daysIn returns the number of days of the month; the zeroth day of the next
// month is the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
