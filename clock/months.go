package clock

import (
	"time"

	"github.com/jinzhu/now"

	"github.com/littlefish-solutions/timetool/clock/types"
)

// carryMonths normalizes month+n into [1, 12], carrying whole years.
func carryMonths(year, month, n int) (int, time.Month) {
	month += n
	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}
	return year, time.Month(month)
}

// lastDayOfMonth returns the day number of the last day of the given
// month.
func lastDayOfMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return now.With(first).EndOfMonth().Day()
}

// addMonths applies the month-addition policy to the civil reading of
// t, anchoring the result at offset zero. When the input's day-of-month
// does not exist in the target month, adding rolls over to the first
// day of the month after the target month, while subtracting clamps to
// the last day of the target month. Time-of-day is preserved either
// way.
func addMonths(n int, t time.Time) time.Time {
	year, month := carryMonths(t.Year(), int(t.Month()), n)

	if t.Day() <= lastDayOfMonth(year, month) {
		return time.Date(
			year, month, t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
			time.UTC,
		)
	}

	if n > 0 {
		year, month = carryMonths(year, int(month), 1)
		return time.Date(
			year, month, 1,
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
			time.UTC,
		)
	}

	return time.Date(
		year, month, lastDayOfMonth(year, month),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.UTC,
	)
}

// AddMonths adds n months (positive or negative) to ts, preserving its
// variant, zone tag, and time-of-day. Month overflow and underflow
// carry into the year. When the input's day-of-month does not exist in
// the target month (adding one month to 31 January, say), a positive n
// rolls over to the first day of the month after the target month and
// a negative n clamps to the last day of the target month.
func AddMonths(n int, ts types.Instant) types.Instant {
	switch v := ts.(type) {
	case *types.CalendarDate:
		return AddMonthsToDate(n, v)
	case *types.UTCInstant:
		return types.NewUTCInstant(addMonths(n, v.GoTime()))
	case *types.LocalInstant:
		return types.NewLocalInstant(addMonths(n, v.GoTime()))
	case *types.NaiveInstant:
		return types.NewNaiveInstant(addMonths(n, v.GoTime()))
	default:
		return types.NewNaiveInstant(addMonths(n, ts.GoTime()))
	}
}

// AddMonthsToDate adds n months to date under the same rollover and
// clamp policy as [AddMonths].
func AddMonthsToDate(n int, date *types.CalendarDate) *types.CalendarDate {
	return types.NewCalendarDate(addMonths(n, date.GoTime()))
}
