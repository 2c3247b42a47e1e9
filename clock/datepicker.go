package clock

import (
	"fmt"
	"time"

	"github.com/littlefish-solutions/timetool/clock/types"
)

// DateTimeFromDatePicker parses a "DD/MM/YYYY" string from a jQuery UI
// datepicker into a naive instant at midnight. Returns an error
// wrapping [types.ErrTimeType] when src is malformed.
func DateTimeFromDatePicker(src string) (*types.NaiveInstant, error) {
	tim, err := time.Parse(dateLayout, src)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: Cannot parse %q as %q", types.ErrTimeType, src, dateLayout,
		)
	}
	return types.NewNaiveInstant(tim), nil
}

// DateFromDatePicker parses a "DD/MM/YYYY" string from a jQuery UI
// datepicker into a CalendarDate. Returns an error wrapping
// [types.ErrTimeType] when src is malformed.
func DateFromDatePicker(src string) (*types.CalendarDate, error) {
	in, err := DateTimeFromDatePicker(src)
	if err != nil {
		return nil, err
	}
	return types.NewCalendarDate(in.GoTime()), nil
}

// DateTimeToDatePicker renders in as a "DD/MM/YYYY" string for a
// jQuery UI datepicker.
func DateTimeToDatePicker(in types.Instant) string {
	return in.GoTime().Format(dateLayout)
}
