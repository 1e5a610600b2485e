package temporals

import (
	"fmt"
	"time"

	"github.com/adamluzsi/timeseq"
)

// YearMonthOf returns the month of the given year.
// Out of range months are normalized, so month 13 of 2020 is January 2021.
func YearMonthOf(year int, month time.Month) YearMonth {
	total := int64(year)*12 + int64(month-1)
	return YearMonth{
		year:  int(floorDiv(total, 12)),
		month: time.Month(floorMod(total, 12) + 1),
	}
}

// YearMonth is a whole month of a year in the ISO calendar.
// The zero value is January of year 0.
//
// YearMonth supports the Month and Year units.
type YearMonth struct {
	year  int
	month time.Month
}

func (ym YearMonth) Year() int { return ym.year }

func (ym YearMonth) Month() time.Month {
	if ym.month == 0 {
		return time.January
	}
	return ym.month
}

// AtDay returns the date of the given day inside the month,
// clamped to the last day of the month.
func (ym YearMonth) AtDay(day int) Date {
	if last := daysIn(ym.year, ym.Month()); last < day {
		day = last
	}
	return DateOf(ym.year, ym.Month(), day)
}

// Compare orders year-months chronologically.
func (ym YearMonth) Compare(oth YearMonth) int {
	switch a, b := ym.index(), oth.index(); {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

// Supports reports whether the unit is usable with a year-month.
// Units finer than a month have no meaning for a YearMonth.
func (ym YearMonth) Supports(u timeseq.Unit) bool {
	switch u {
	case timeseq.Month, timeseq.Year:
		return true
	default:
		return false
	}
}

// Until returns the distance to oth in whole units of u,
// negative when oth is earlier.
func (ym YearMonth) Until(oth YearMonth, u timeseq.Unit) int64 {
	switch u {
	case timeseq.Month:
		return oth.index() - ym.index()
	case timeseq.Year:
		return (oth.index() - ym.index()) / 12
	default:
		return 0
	}
}

// AddUnits returns the year-month n units of u later.
func (ym YearMonth) AddUnits(u timeseq.Unit, n int64) (YearMonth, error) {
	switch u {
	case timeseq.Month:
		return YearMonthOf(ym.year, ym.Month()+time.Month(n)), nil
	case timeseq.Year:
		return YearMonthOf(ym.year+int(n), ym.Month()), nil
	default:
		return ym, fmt.Errorf("%w: %s cannot be added to a YearMonth", timeseq.ErrUnsupportedUnit, u)
	}
}

// Add returns the year-month advanced by every component of the step.
func (ym YearMonth) Add(s timeseq.Step) (YearMonth, error) {
	out := ym
	for _, p := range s.Parts() {
		var err error
		out, err = out.AddUnits(p.Unit, p.N)
		if err != nil {
			return ym, err
		}
	}
	return out, nil
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.year, ym.Month())
}

func (ym YearMonth) index() int64 {
	return int64(ym.year)*12 + int64(ym.Month()-1)
}
