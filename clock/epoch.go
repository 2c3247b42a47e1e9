package clock

import (
	"time"

	"github.com/littlefish-solutions/timetool/clock/types"
)

// UnixTime returns the number of seconds, with sub-second precision,
// between the Unix epoch and in. The civil reading of in is taken as
// UTC regardless of its zone tag; no conversion is performed, so
// callers must pass a UTC value.
func UnixTime(in types.Instant) float64 {
	t := in.GoTime()
	utc := time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.UTC,
	)
	return float64(utc.Unix()) + float64(utc.Nanosecond())/float64(time.Second)
}

// UnixTimeNow returns the Unix timestamp of the current time.
func UnixTimeNow() float64 {
	return UnixTime(types.NowUTC())
}
