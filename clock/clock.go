// Package clock provides timezone conversion, display formatting, and
// calendar arithmetic helpers for web request handling code.
//
// All functions are pure: they read the fixed zone rules in
// [types.UTC] and [types.Local], allocate new values, and never mutate
// their inputs, so they are safe to call concurrently without
// coordination.
package clock

import (
	"errors"
	"fmt"

	"github.com/littlefish-solutions/timetool/clock/types"
)

var (
	// ErrInvalidZone wraps zone-conversion errors.
	ErrInvalidZone = errors.New("zone")

	// ErrNotUTC reports a Local-tagged instant passed to ToLocal.
	ErrNotUTC = fmt.Errorf("%w: not a UTC time", ErrInvalidZone)

	// ErrNotLocal reports a UTC-tagged instant passed to ToUTC.
	ErrNotLocal = fmt.Errorf("%w: not a local time", ErrInvalidZone)
)

// ToLocal converts in to Local civil time and returns it as a
// [types.NaiveInstant], understood by convention to be local. A
// [types.NaiveInstant] input is read as UTC. A [types.CalendarDate]
// has no time-of-day to convert and is returned unchanged. A
// [types.LocalInstant] input returns ErrNotUTC.
//
// For any instant not falling in a DST transition of the Local zone,
// ToUTC(ToLocal(x)) returns x. Civil times inside a transition gap or
// overlap resolve the way [time.Date] resolves them: nonexistent times
// normalize across the transition and ambiguous times take one of the
// two offsets deterministically.
func ToLocal(in types.Instant) (types.Instant, error) {
	switch v := in.(type) {
	case *types.CalendarDate:
		return v, nil
	case *types.NaiveInstant:
		return types.NewNaiveInstant(v.GoTime().In(types.Local)), nil
	case *types.UTCInstant:
		return types.NewNaiveInstant(v.GoTime().In(types.Local)), nil
	case *types.LocalInstant:
		return nil, fmt.Errorf("%w: %v", ErrNotUTC, v)
	default:
		return nil, fmt.Errorf(
			"%w: unrecognized calendar type %T", ErrInvalidZone, in,
		)
	}
}

// ToUTC converts in to UTC civil time and returns it as a
// [types.NaiveInstant], understood by convention to be UTC. A
// [types.NaiveInstant] input is read as Local. A [types.CalendarDate]
// has no time-of-day to convert and is returned unchanged. A
// [types.UTCInstant] input returns ErrNotLocal.
//
// The round-trip and DST resolution rules of [ToLocal] apply.
func ToUTC(in types.Instant) (types.Instant, error) {
	switch v := in.(type) {
	case *types.CalendarDate:
		return v, nil
	case *types.NaiveInstant:
		return types.NewNaiveInstant(v.ReadIn(types.Local).In(types.UTC)), nil
	case *types.LocalInstant:
		return types.NewNaiveInstant(v.GoTime().In(types.UTC)), nil
	case *types.UTCInstant:
		return nil, fmt.Errorf("%w: %v", ErrNotLocal, v)
	default:
		return nil, fmt.Errorf(
			"%w: unrecognized calendar type %T", ErrInvalidZone, in,
		)
	}
}
