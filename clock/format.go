package clock

import (
	"time"

	"github.com/littlefish-solutions/timetool/clock/types"
)

// Display layouts. Day and month names come from Go's fixed English
// reference layout names.
const (
	dateLayout          = "02/01/2006"
	dateTimeLayout      = "02/01/2006 15:04:05"
	dateLongLayout      = "Monday 02 January 2006"
	dateTimeLongLayout  = "Monday 02 January 2006 15:04:05"
	dateLongNoDayLayout = "02 January 2006"
)

// invalidDate is rendered in place of a date whose year cannot be
// displayed in four digits. Page rendering must not crash on legacy
// out-of-range dates.
const invalidDate = "????"

// FormatOption specifies a formatting option.
type FormatOption func(*formatSettings)

type formatSettings struct {
	convertToLocal bool
}

// WithoutLocalConversion renders the value's civil time as given
// instead of converting it to Local time first.
func WithoutLocalConversion() FormatOption {
	return func(s *formatSettings) { s.convertToLocal = false }
}

// displayTime resolves in to the civil time the formatters should
// render. Returns false for absent input. Conversion to Local applies
// unless disabled; a LocalInstant is already local civil time and
// renders as-is.
func displayTime(in types.Instant, opts []FormatOption) (time.Time, bool) {
	if in == nil {
		return time.Time{}, false
	}

	settings := formatSettings{convertToLocal: true}
	for _, opt := range opts {
		opt(&settings)
	}
	if !settings.convertToLocal {
		return in.GoTime(), true
	}

	if l, ok := in.(*types.LocalInstant); ok {
		return l.GoTime(), true
	}
	out, err := ToLocal(in)
	if err != nil {
		// A foreign Instant implementation renders as given.
		return in.GoTime(), true
	}
	return out.GoTime(), true
}

// renderDate formats t with a date-only layout, substituting the
// "????" placeholder and logging a warning when the year cannot be
// displayed in four digits.
func renderDate(t time.Time, layout string) string {
	if year := t.Year(); year < 0 || year > 9999 {
		logger().Warn("invalid date", "value", t)
		return invalidDate
	}
	return t.Format(layout)
}

// FormatDate renders in as "DD/MM/YYYY", converting to Local time
// first unless [WithoutLocalConversion] is given. Nil input renders as
// the empty string; a year outside [0, 9999] renders as "????".
func FormatDate(in types.Instant, opts ...FormatOption) string {
	t, ok := displayTime(in, opts)
	if !ok {
		return ""
	}
	return renderDate(t, dateLayout)
}

// FormatDateTime renders in as "DD/MM/YYYY HH:MM:SS", converting to
// Local time first unless [WithoutLocalConversion] is given. Nil input
// renders as the empty string.
func FormatDateTime(in types.Instant, opts ...FormatOption) string {
	t, ok := displayTime(in, opts)
	if !ok {
		return ""
	}
	return t.Format(dateTimeLayout)
}

// FormatDateLong renders in as "Weekday DD Month YYYY", converting to
// Local time first unless [WithoutLocalConversion] is given. Nil input
// renders as the empty string; a year outside [0, 9999] renders as
// "????".
func FormatDateLong(in types.Instant, opts ...FormatOption) string {
	t, ok := displayTime(in, opts)
	if !ok {
		return ""
	}
	return renderDate(t, dateLongLayout)
}

// FormatDateTimeLong renders in as "Weekday DD Month YYYY HH:MM:SS",
// converting to Local time first unless [WithoutLocalConversion] is
// given. Nil input renders as the empty string.
func FormatDateTimeLong(in types.Instant, opts ...FormatOption) string {
	t, ok := displayTime(in, opts)
	if !ok {
		return ""
	}
	return t.Format(dateTimeLongLayout)
}

// FormatDateLongNoDay renders in as "DD Month YYYY", converting to
// Local time first unless [WithoutLocalConversion] is given. Nil input
// renders as the empty string; a year outside [0, 9999] renders as
// "????".
func FormatDateLongNoDay(in types.Instant, opts ...FormatOption) string {
	t, ok := displayTime(in, opts)
	if !ok {
		return ""
	}
	return renderDate(t, dateLongNoDayLayout)
}
