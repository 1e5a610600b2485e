package streams

import (
	"time"

	"github.com/adamluzsi/timeseq"
	"github.com/adamluzsi/timeseq/iterators"
	"github.com/adamluzsi/timeseq/temporals"
)

// EveryDayInYear returns a lazily populated iterator over the days of the year,
// from the 1st of January until the 31st of December, in order.
func EveryDayInYear(year int) timeseq.Iterator[temporals.Date] {
	r, err := iterators.Range(
		temporals.DateOf(year, time.January, 1),
		temporals.DateOf(year+1, time.January, 1),
		timeseq.Days(1),
	)
	if err != nil {
		return iterators.NewError[temporals.Date](err)
	}
	return r
}

// EveryMonthInYear returns an iterator over the twelve months of the year, in order.
func EveryMonthInYear(year int) timeseq.Iterator[temporals.YearMonth] {
	r, err := iterators.Range(
		temporals.YearMonthOf(year, time.January),
		temporals.YearMonthOf(year+1, time.January),
		timeseq.Months(1),
	)
	if err != nil {
		return iterators.NewError[temporals.YearMonth](err)
	}
	return r
}

// AllHoursInDay returns an iterator over the 24 full hours of the given day,
// from midnight until the midnight of the next day (excluded).
func AllHoursInDay(day temporals.Date) timeseq.Iterator[temporals.DateTime] {
	next, err := day.AddUnits(timeseq.Day, 1)
	if err != nil {
		return iterators.NewError[temporals.DateTime](err)
	}
	r, err := iterators.Range(
		day.AtStartOfDay(),
		next.AtStartOfDay(),
		timeseq.Hours(1),
	)
	if err != nil {
		return iterators.NewError[temporals.DateTime](err)
	}
	return r
}

// AllHoursInAnyDay returns an iterator over the 24 full hours of any day
// as times of day, from midnight until 23:00, in order.
//
// The range ends at 23:59 instead of midnight: the time of day domain is
// cyclic, so the following midnight compares equal to the starting one and
// an until of midnight would describe an empty range. Ending just after the
// last full hour keeps 23:00 included without producing anything past it.
func AllHoursInAnyDay() timeseq.Iterator[temporals.Time] {
	r, err := iterators.Range(
		temporals.Midnight,
		temporals.TimeOf(23, 59),
		timeseq.Hours(1),
	)
	if err != nil {
		return iterators.NewError[temporals.Time](err)
	}
	return r
}

// AllMonths returns an iterator over the twelve months of the ISO calendar.
// It is the same as iterating the months directly, but lets everything about
// enumerating time be reached from one place.
func AllMonths() timeseq.Iterator[time.Month] {
	return iterators.Slice([]time.Month{
		time.January,
		time.February,
		time.March,
		time.April,
		time.May,
		time.June,
		time.July,
		time.August,
		time.September,
		time.October,
		time.November,
		time.December,
	})
}
