package types

import (
	"fmt"
	"time"
)

// CalendarDate represents a date with no time-of-day component. It
// carries no zone identity and is never converted between zones.
type CalendarDate struct {
	time.Time
}

// NewCalendarDate coerces src into a CalendarDate, discarding any
// time-of-day component and zone.
func NewCalendarDate(src time.Time) *CalendarDate {
	return &CalendarDate{
		time.Date(src.Year(), src.Month(), src.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// Today returns the current date as read in the Local zone.
func Today() *CalendarDate {
	return NewCalendarDate(time.Now().In(Local))
}

// GoTime returns the underlying time.Time object.
func (d *CalendarDate) GoTime() time.Time { return d.Time }

// dateFormat represents the canonical string format for CalendarDate
// values.
const dateFormat = "2006-01-02"

// String returns the string representation of d.
func (d *CalendarDate) String() string {
	return d.Format(dateFormat)
}

// Compare compares the time instant d with u. If d is before u, it
// returns -1; if d is after u, it returns +1; if they're the same, it
// returns 0.
func (d *CalendarDate) Compare(u time.Time) int {
	return d.Time.Compare(u)
}

// MarshalJSON implements the json.Marshaler interface. The date is a
// quoted string in the "2006-01-02" format.
func (d *CalendarDate) MarshalJSON() ([]byte, error) {
	const dateJSONSize = len(dateFormat) + len(`""`)
	b := make([]byte, 0, dateJSONSize)
	b = append(b, '"')
	b = d.AppendFormat(b, dateFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date
// must be a quoted string in the "2006-01-02" format.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	tim, err := time.Parse(dateFormat, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("%w: Cannot parse %s as %q", ErrTimeType, data, dateFormat)
	}
	*d = *NewCalendarDate(tim)
	return nil
}
