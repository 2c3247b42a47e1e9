package clock

import (
	"time"

	"github.com/littlefish-solutions/timetool/clock/types"
)

// WorkdayOption specifies a working-day counting option.
type WorkdayOption func(*workdaySettings)

type workdaySettings struct {
	includeSaturday bool
}

// WithSaturdays counts Saturdays as working days. Sundays are always
// skipped.
func WithSaturdays() WorkdayOption {
	return func(s *workdaySettings) { s.includeSaturday = true }
}

// AddWorkingDays advances date by n working days: each step moves one
// calendar day forward, then keeps moving while the day is a Sunday,
// or a Saturday unless [WithSaturdays] is given. Only forward counts
// are supported; n <= 0 returns date unchanged.
func AddWorkingDays(n int, date *types.CalendarDate, opts ...WorkdayOption) *types.CalendarDate {
	var settings workdaySettings
	for _, opt := range opts {
		opt(&settings)
	}

	day := date.GoTime()
	for i := 0; i < n; i++ {
		day = day.AddDate(0, 0, 1)
		for day.Weekday() == time.Sunday ||
			(!settings.includeSaturday && day.Weekday() == time.Saturday) {
			day = day.AddDate(0, 0, 1)
		}
	}
	return types.NewCalendarDate(day)
}

// AddWorkingDaysFromToday advances today's Local date by n working
// days.
func AddWorkingDaysFromToday(n int, opts ...WorkdayOption) *types.CalendarDate {
	return AddWorkingDays(n, types.Today(), opts...)
}
