package clock

import (
	"bytes"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/maps"

	"github.com/littlefish-solutions/timetool/clock/types"
)

// formatters indexes the display formatters by name.
//
//nolint:gochecknoglobals
var formatters = map[string]func(types.Instant, ...FormatOption) string{
	"FormatDate":          FormatDate,
	"FormatDateTime":      FormatDateTime,
	"FormatDateLong":      FormatDateLong,
	"FormatDateTimeLong":  FormatDateTimeLong,
	"FormatDateLongNoDay": FormatDateLongNoDay,
}

func formatterNames() []string {
	names := maps.Keys(formatters)
	sort.Strings(names)
	return names
}

func TestFormatNil(t *testing.T) {
	t.Parallel()

	for _, name := range formatterNames() {
		format := formatters[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, format(nil))
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	// 2024-07-01T23:30:45 UTC reads as 2024-07-02T00:30:45 in London.
	summer := time.Date(2024, 7, 1, 23, 30, 45, 0, time.UTC)

	for _, tc := range []struct {
		name   string
		format func(types.Instant, ...FormatOption) string
		in     types.Instant
		opts   []FormatOption
		exp    string
	}{
		{
			name:   "date_converted",
			format: FormatDate,
			in:     types.NewUTCInstant(summer),
			exp:    "02/07/2024",
		},
		{
			name:   "date_unconverted",
			format: FormatDate,
			in:     types.NewUTCInstant(summer),
			opts:   []FormatOption{WithoutLocalConversion()},
			exp:    "01/07/2024",
		},
		{
			name:   "date_local_as_is",
			format: FormatDate,
			in:     types.NewLocalInstant(summer),
			exp:    "01/07/2024",
		},
		{
			name:   "date_calendar_date",
			format: FormatDate,
			in:     types.NewCalendarDate(summer),
			exp:    "01/07/2024",
		},
		{
			name:   "datetime_converted",
			format: FormatDateTime,
			in:     types.NewUTCInstant(summer),
			exp:    "02/07/2024 00:30:45",
		},
		{
			name:   "datetime_unconverted",
			format: FormatDateTime,
			in:     types.NewUTCInstant(summer),
			opts:   []FormatOption{WithoutLocalConversion()},
			exp:    "01/07/2024 23:30:45",
		},
		{
			name:   "date_long",
			format: FormatDateLong,
			in:     types.NewUTCInstant(summer),
			exp:    "Tuesday 02 July 2024",
		},
		{
			name:   "datetime_long",
			format: FormatDateTimeLong,
			in:     types.NewUTCInstant(summer),
			exp:    "Tuesday 02 July 2024 00:30:45",
		},
		{
			name:   "date_long_no_day",
			format: FormatDateLongNoDay,
			in:     types.NewUTCInstant(summer),
			exp:    "02 July 2024",
		},
		{
			name:   "winter_no_shift",
			format: FormatDateTime,
			in:     types.NewUTCInstant(time.Date(2024, 12, 31, 23, 30, 45, 0, time.UTC)),
			exp:    "31/12/2024 23:30:45",
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, tc.format(tc.in, tc.opts...))
		})
	}
}

func TestFormatOutOfRangeDate(t *testing.T) {
	// Not parallel: replaces the package logger.
	a := assert.New(t)

	buf := new(bytes.Buffer)
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	defer SetLogger(nil)

	tooBig := types.NewNaiveInstant(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))

	// The date-only formatters soft-fail with a placeholder and log a
	// warning.
	for _, name := range []string{"FormatDate", "FormatDateLong", "FormatDateLongNoDay"} {
		buf.Reset()
		a.Equal(invalidDate, formatters[name](tooBig), name)
		a.Contains(buf.String(), "level=WARN", name)
		a.Contains(buf.String(), "invalid date", name)
	}

	// The datetime formatters render whatever Go produces.
	for _, name := range []string{"FormatDateTime", "FormatDateTimeLong"} {
		buf.Reset()
		a.NotEqual(invalidDate, formatters[name](tooBig), name)
		a.Empty(buf.String(), name)
	}
}

func TestFormatNegativeYear(t *testing.T) {
	// Not parallel: replaces the package logger.
	a := assert.New(t)

	buf := new(bytes.Buffer)
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	defer SetLogger(nil)

	ancient := types.NewNaiveInstant(time.Date(-44, 3, 15, 0, 0, 0, 0, time.UTC))
	a.Equal(invalidDate, FormatDate(ancient))
	a.Contains(buf.String(), "invalid date")
}
