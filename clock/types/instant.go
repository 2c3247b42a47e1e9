package types

import (
	"fmt"
	"time"
)

// reanchor keeps the civil (wall-clock) reading of src but re-anchors
// it in loc. The absolute instant changes unless src was already read
// in loc.
func reanchor(src time.Time, loc *time.Location) time.Time {
	return time.Date(
		src.Year(), src.Month(), src.Day(),
		src.Hour(), src.Minute(), src.Second(), src.Nanosecond(),
		loc,
	)
}

// NaiveInstant represents a date and time-of-day with no zone
// identity. Conversion functions assign it a zone by convention:
// clock.ToLocal reads it as UTC and clock.ToUTC reads it as Local.
// Internally the value is anchored at offset zero purely for storage.
type NaiveInstant struct {
	// Time is the underlying time.Time value.
	time.Time
}

// NewNaiveInstant coerces src into a NaiveInstant, keeping its civil
// reading and discarding its zone.
func NewNaiveInstant(src time.Time) *NaiveInstant {
	return &NaiveInstant{reanchor(src, time.UTC)}
}

// GoTime returns the underlying time.Time object.
func (n *NaiveInstant) GoTime() time.Time { return n.Time }

// ReadIn returns the civil reading of n anchored in loc.
func (n *NaiveInstant) ReadIn(loc *time.Location) time.Time {
	return reanchor(n.Time, loc)
}

// naiveFormat represents the canonical string format for NaiveInstant
// values.
const naiveFormat = "2006-01-02T15:04:05.999999999"

// String returns the string representation of n using the format
// "2006-01-02T15:04:05.999999999".
func (n *NaiveInstant) String() string {
	return n.Time.Format(naiveFormat)
}

// Compare compares the time instant n with u. If n is before u, it
// returns -1; if n is after u, it returns +1; if they're the same, it
// returns 0.
func (n *NaiveInstant) Compare(u time.Time) int {
	return n.Time.Compare(u)
}

// MarshalJSON implements the json.Marshaler interface. The time is a
// quoted string using the "2006-01-02T15:04:05.999999999" format.
func (n NaiveInstant) MarshalJSON() ([]byte, error) {
	const naiveJSONSize = len(naiveFormat) + len(`""`)
	b := make([]byte, 0, naiveJSONSize)
	b = append(b, '"')
	b = n.Time.AppendFormat(b, naiveFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time
// must be a quoted string in the "2006-01-02T15:04:05.999999999"
// format.
func (n *NaiveInstant) UnmarshalJSON(data []byte) error {
	tim, err := time.Parse(naiveFormat, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("%w: Cannot parse %s as %q", ErrTimeType, data, naiveFormat)
	}
	*n = *NewNaiveInstant(tim)
	return nil
}

// UTCInstant represents a date and time-of-day tagged as UTC civil
// time.
type UTCInstant struct {
	// Time is the underlying time.Time value.
	time.Time
}

// NewUTCInstant coerces src into a UTCInstant, keeping its civil
// reading and tagging it UTC.
func NewUTCInstant(src time.Time) *UTCInstant {
	return &UTCInstant{reanchor(src, time.UTC)}
}

// NowUTC returns the current time as a UTCInstant.
func NowUTC() *UTCInstant {
	return &UTCInstant{time.Now().UTC()}
}

// GoTime returns the underlying time.Time object.
func (u *UTCInstant) GoTime() time.Time { return u.Time }

// taggedFormat represents the canonical string format for UTCInstant
// and LocalInstant values. The offset suffix renders "Z" for UTC.
const taggedFormat = "2006-01-02T15:04:05.999999999Z07:00"

// String returns the string representation of u using the format
// "2006-01-02T15:04:05.999999999Z07:00".
func (u *UTCInstant) String() string {
	return u.Time.Format(taggedFormat)
}

// Compare compares the time instant u with t. If u is before t, it
// returns -1; if u is after t, it returns +1; if they're the same, it
// returns 0.
func (u *UTCInstant) Compare(t time.Time) int {
	return u.Time.Compare(t)
}

// MarshalJSON implements the json.Marshaler interface. The time is a
// quoted string using the "2006-01-02T15:04:05.999999999Z07:00"
// format.
func (u UTCInstant) MarshalJSON() ([]byte, error) {
	const taggedJSONSize = len(taggedFormat) + len(`""`)
	b := make([]byte, 0, taggedJSONSize)
	b = append(b, '"')
	b = u.Time.AppendFormat(b, taggedFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time
// must be a quoted string in the "2006-01-02T15:04:05.999999999Z07:00"
// format. Nonzero offsets are accepted and converted to UTC.
func (u *UTCInstant) UnmarshalJSON(data []byte) error {
	tim, err := time.Parse(taggedFormat, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("%w: Cannot parse %s as %q", ErrTimeType, data, taggedFormat)
	}
	*u = UTCInstant{tim.In(time.UTC)}
	return nil
}

// LocalInstant represents a date and time-of-day tagged as Local civil
// time.
type LocalInstant struct {
	// Time is the underlying time.Time value.
	time.Time
}

// NewLocalInstant coerces src into a LocalInstant, keeping its civil
// reading and tagging it Local. When the civil reading falls in a DST
// gap or overlap, time.Date's resolution applies: nonexistent times
// normalize across the transition and ambiguous times take one of the
// two offsets deterministically.
func NewLocalInstant(src time.Time) *LocalInstant {
	return &LocalInstant{reanchor(src, Local)}
}

// GoTime returns the underlying time.Time object.
func (l *LocalInstant) GoTime() time.Time { return l.Time }

// String returns the string representation of l using the format
// "2006-01-02T15:04:05.999999999Z07:00".
func (l *LocalInstant) String() string {
	return l.Time.Format(taggedFormat)
}

// Compare compares the time instant l with t. If l is before t, it
// returns -1; if l is after t, it returns +1; if they're the same, it
// returns 0.
func (l *LocalInstant) Compare(t time.Time) int {
	return l.Time.Compare(t)
}

// MarshalJSON implements the json.Marshaler interface. The time is a
// quoted string using the "2006-01-02T15:04:05.999999999Z07:00"
// format, with the offset the Local zone had at that instant.
func (l LocalInstant) MarshalJSON() ([]byte, error) {
	const taggedJSONSize = len(taggedFormat) + len(`""`)
	b := make([]byte, 0, taggedJSONSize)
	b = append(b, '"')
	b = l.Time.AppendFormat(b, taggedFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time
// must be a quoted string in the "2006-01-02T15:04:05.999999999Z07:00"
// format. The instant is converted into the Local zone.
func (l *LocalInstant) UnmarshalJSON(data []byte) error {
	tim, err := time.Parse(taggedFormat, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("%w: Cannot parse %s as %q", ErrTimeType, data, taggedFormat)
	}
	*l = LocalInstant{tim.In(Local)}
	return nil
}
