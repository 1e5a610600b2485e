package temporals_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/timeseq"
	"github.com/adamluzsi/timeseq/temporals"
)

func TestDateOf_OutOfRangeValuesGiven_TheDateIsNormalized(t *testing.T) {
	t.Parallel()

	require.Equal(t, temporals.DateOf(2020, time.February, 1), temporals.DateOf(2020, time.January, 32))
	require.Equal(t, temporals.DateOf(2021, time.January, 1), temporals.DateOf(2020, time.December, 32))
	require.Equal(t, temporals.DateOf(2019, time.December, 31), temporals.DateOf(2020, time.January, 0))
}

func TestDate_ZeroValue_IsTheFirstOfJanuaryYearZero(t *testing.T) {
	t.Parallel()

	var d temporals.Date

	require.Equal(t, 0, d.Year())
	require.Equal(t, time.January, d.Month())
	require.Equal(t, 1, d.Day())
}

func TestDate_Compare_OrdersChronologically(t *testing.T) {
	t.Parallel()

	earlier := temporals.DateOf(2020, time.June, 14)
	later := temporals.DateOf(2020, time.June, 15)

	require.Equal(t, -1, earlier.Compare(later))
	require.Equal(t, 1, later.Compare(earlier))
	require.Equal(t, 0, earlier.Compare(temporals.DateOf(2020, time.June, 14)))
}

func TestDate_Supports_OnlyDayOrCoarserUnits(t *testing.T) {
	t.Parallel()

	d := temporals.DateOf(2020, time.June, 14)

	require.True(t, d.Supports(timeseq.Day))
	require.True(t, d.Supports(timeseq.Week))
	require.True(t, d.Supports(timeseq.Month))
	require.True(t, d.Supports(timeseq.Year))

	require.False(t, d.Supports(timeseq.Hour))
	require.False(t, d.Supports(timeseq.HalfDay))
	require.False(t, d.Supports(timeseq.Nanosecond))
	require.False(t, d.Supports(timeseq.Unit{}))
}

func TestDate_Until_WholeUnitsCounted(t *testing.T) {
	t.Parallel()

	t.Run("days across a leap february", func(t *testing.T) {
		a := temporals.DateOf(2020, time.February, 1)
		b := temporals.DateOf(2020, time.March, 1)
		require.Equal(t, int64(29), a.Until(b, timeseq.Day))
		require.Equal(t, int64(-29), b.Until(a, timeseq.Day))
	})

	t.Run("weeks are truncated towards zero", func(t *testing.T) {
		a := temporals.DateOf(2020, time.June, 1)
		require.Equal(t, int64(1), a.Until(temporals.DateOf(2020, time.June, 13), timeseq.Week))
		require.Equal(t, int64(2), a.Until(temporals.DateOf(2020, time.June, 15), timeseq.Week))
	})

	t.Run("months need the day of month to be reached", func(t *testing.T) {
		a := temporals.DateOf(2020, time.January, 31)
		require.Equal(t, int64(0), a.Until(temporals.DateOf(2020, time.February, 28), timeseq.Month))
		require.Equal(t, int64(1), a.Until(temporals.DateOf(2020, time.March, 1), timeseq.Month))
		require.Equal(t, int64(-1), a.Until(temporals.DateOf(2019, time.December, 30), timeseq.Month))
		require.Equal(t, int64(0), a.Until(temporals.DateOf(2020, time.January, 1), timeseq.Month))
	})

	t.Run("years are whole months divided by twelve", func(t *testing.T) {
		a := temporals.DateOf(2020, time.June, 14)
		require.Equal(t, int64(0), a.Until(temporals.DateOf(2021, time.June, 13), timeseq.Year))
		require.Equal(t, int64(1), a.Until(temporals.DateOf(2021, time.June, 14), timeseq.Year))
	})

	t.Run("dates before the unix epoch", func(t *testing.T) {
		a := temporals.DateOf(1969, time.December, 31)
		b := temporals.DateOf(1970, time.January, 2)
		require.Equal(t, int64(2), a.Until(b, timeseq.Day))
		require.Equal(t, int64(-2), b.Until(a, timeseq.Day))
	})
}

func TestDate_AddUnits_CalendarArithmetic(t *testing.T) {
	t.Parallel()

	t.Run("days roll over month and year boundaries", func(t *testing.T) {
		d, err := temporals.DateOf(2020, time.December, 30).AddUnits(timeseq.Day, 3)
		require.Nil(t, err)
		require.Equal(t, temporals.DateOf(2021, time.January, 2), d)
	})

	t.Run("months clamp to the end of the shorter month", func(t *testing.T) {
		d, err := temporals.DateOf(2020, time.January, 31).AddUnits(timeseq.Month, 1)
		require.Nil(t, err)
		require.Equal(t, temporals.DateOf(2020, time.February, 29), d)

		d, err = temporals.DateOf(2021, time.January, 31).AddUnits(timeseq.Month, 1)
		require.Nil(t, err)
		require.Equal(t, temporals.DateOf(2021, time.February, 28), d)
	})

	t.Run("a year after a leap day is the 28th", func(t *testing.T) {
		d, err := temporals.DateOf(2020, time.February, 29).AddUnits(timeseq.Year, 1)
		require.Nil(t, err)
		require.Equal(t, temporals.DateOf(2021, time.February, 28), d)
	})

	t.Run("negative amounts move backwards", func(t *testing.T) {
		d, err := temporals.DateOf(2020, time.March, 31).AddUnits(timeseq.Month, -1)
		require.Nil(t, err)
		require.Equal(t, temporals.DateOf(2020, time.February, 29), d)
	})

	t.Run("units finer than a day are refused", func(t *testing.T) {
		_, err := temporals.DateOf(2020, time.June, 14).AddUnits(timeseq.Hour, 1)
		require.ErrorIs(t, err, timeseq.ErrUnsupportedUnit)
	})
}

func TestDate_Add_StepAppliedCoarsestUnitFirst(t *testing.T) {
	t.Parallel()

	step := timeseq.Days(1).With(timeseq.Month, 1)

	d, err := temporals.DateOf(2020, time.January, 31).Add(step)
	require.Nil(t, err)
	require.Equal(t, temporals.DateOf(2020, time.March, 1), d)
}

func TestDate_Weekday(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Monday, temporals.DateOf(2021, time.June, 7).Weekday())
	require.Equal(t, time.Sunday, temporals.DateOf(2021, time.June, 6).Weekday())
}

func TestDate_AtStartOfDay(t *testing.T) {
	t.Parallel()

	dt := temporals.DateOf(2020, time.June, 14).AtStartOfDay()
	require.Equal(t, time.Date(2020, time.June, 14, 0, 0, 0, 0, time.UTC), dt.Time())
}

func TestDate_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2020-06-14", temporals.DateOf(2020, time.June, 14).String())
	require.Equal(t, "0987-01-02", temporals.DateOf(987, time.January, 2).String())
}
