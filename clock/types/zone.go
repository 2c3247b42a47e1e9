package types

import (
	"fmt"
	"time"

	"4d63.com/tz"
)

// LocalZoneName is the IANA name of the single fixed civil-time zone
// used for local conversions.
const LocalZoneName = "Europe/London"

//nolint:gochecknoglobals
var (
	// UTC is the universal zone singleton.
	UTC = time.UTC

	// Local is the fixed civil-time zone used by clock.ToLocal and
	// clock.ToUTC, with its full historical DST rules. It is loaded
	// once at package initialization and never mutated.
	Local = mustLoadLocal()
)

// mustLoadLocal loads LocalZoneName through 4d63.com/tz, which falls
// back to embedded zone data when the host has no tzdata installed.
// The name is a compile-time constant, so a failure here means a
// corrupt zone database and there is nothing sensible to degrade to.
func mustLoadLocal() *time.Location {
	loc, err := tz.LoadLocation(LocalZoneName)
	if err != nil {
		panic(fmt.Sprintf("types: cannot load zone %q: %v", LocalZoneName, err))
	}
	return loc
}
