// Package types provides the calendar value types used throughout
// timetool.
//
// Every value is one of four variants: CalendarDate (a date with no
// time-of-day component), UTCInstant, LocalInstant, and NaiveInstant.
// The zone identity lives in the type, so conversion and formatting
// functions switch on the variant rather than inspecting optional zone
// attributes on a shared type.
package types

import (
	"errors"
	"time"
)

// ErrTimeType wraps parse and unmarshal errors returned by the types
// package.
var ErrTimeType = errors.New("timetype")

// secondsPerHour contains the number of seconds in an hour (excluding
// leap seconds).
const secondsPerHour = 60 * 60

// Instant defines the interface for all calendar value variants.
type Instant interface {
	// GoTime returns the underlying time.Time object.
	GoTime() time.Time
}
