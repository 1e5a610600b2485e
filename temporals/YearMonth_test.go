package temporals_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/timeseq"
	"github.com/adamluzsi/timeseq/temporals"
)

func TestYearMonthOf_OutOfRangeMonthGiven_TheMonthIsNormalized(t *testing.T) {
	t.Parallel()

	require.Equal(t, temporals.YearMonthOf(2021, time.January), temporals.YearMonthOf(2020, time.Month(13)))
	require.Equal(t, temporals.YearMonthOf(2019, time.December), temporals.YearMonthOf(2020, time.Month(0)))
}

func TestYearMonth_Compare_OrdersChronologically(t *testing.T) {
	t.Parallel()

	earlier := temporals.YearMonthOf(2020, time.June)
	later := temporals.YearMonthOf(2020, time.July)

	require.Equal(t, -1, earlier.Compare(later))
	require.Equal(t, 1, later.Compare(earlier))
	require.Equal(t, 0, earlier.Compare(temporals.YearMonthOf(2020, time.June)))
	require.Equal(t, -1, temporals.YearMonthOf(2019, time.December).Compare(earlier))
}

func TestYearMonth_Supports_OnlyMonthAndYear(t *testing.T) {
	t.Parallel()

	ym := temporals.YearMonthOf(2020, time.June)

	require.True(t, ym.Supports(timeseq.Month))
	require.True(t, ym.Supports(timeseq.Year))

	require.False(t, ym.Supports(timeseq.Day))
	require.False(t, ym.Supports(timeseq.Week))
	require.False(t, ym.Supports(timeseq.Hour))
}

func TestYearMonth_Until_WholeUnitsCounted(t *testing.T) {
	t.Parallel()

	a := temporals.YearMonthOf(2020, time.June)

	require.Equal(t, int64(7), a.Until(temporals.YearMonthOf(2021, time.January), timeseq.Month))
	require.Equal(t, int64(-6), a.Until(temporals.YearMonthOf(2019, time.December), timeseq.Month))
	require.Equal(t, int64(0), a.Until(temporals.YearMonthOf(2021, time.May), timeseq.Year))
	require.Equal(t, int64(1), a.Until(temporals.YearMonthOf(2021, time.June), timeseq.Year))
}

func TestYearMonth_AddUnits_MonthArithmetic(t *testing.T) {
	t.Parallel()

	t.Run("months roll over the year boundary", func(t *testing.T) {
		ym, err := temporals.YearMonthOf(2020, time.November).AddUnits(timeseq.Month, 3)
		require.Nil(t, err)
		require.Equal(t, temporals.YearMonthOf(2021, time.February), ym)
	})

	t.Run("years keep the month", func(t *testing.T) {
		ym, err := temporals.YearMonthOf(2020, time.June).AddUnits(timeseq.Year, -2)
		require.Nil(t, err)
		require.Equal(t, temporals.YearMonthOf(2018, time.June), ym)
	})

	t.Run("units finer than a month are refused", func(t *testing.T) {
		_, err := temporals.YearMonthOf(2020, time.June).AddUnits(timeseq.Day, 1)
		require.ErrorIs(t, err, timeseq.ErrUnsupportedUnit)
	})
}

func TestYearMonth_AtDay_DayClampedToTheMonthLength(t *testing.T) {
	t.Parallel()

	require.Equal(t, temporals.DateOf(2021, time.February, 28), temporals.YearMonthOf(2021, time.February).AtDay(31))
	require.Equal(t, temporals.DateOf(2020, time.February, 29), temporals.YearMonthOf(2020, time.February).AtDay(31))
	require.Equal(t, temporals.DateOf(2020, time.June, 14), temporals.YearMonthOf(2020, time.June).AtDay(14))
}

func TestYearMonth_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2020-06", temporals.YearMonthOf(2020, time.June).String())
}
