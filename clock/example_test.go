package clock_test

import (
	"fmt"
	"log"
	"time"

	"github.com/littlefish-solutions/timetool/clock"
	"github.com/littlefish-solutions/timetool/clock/types"
)

// A UTC timestamp from the database, rendered for display in local
// civil time. 23:30 UTC on a July evening is half past midnight the
// next day in London.
func ExampleFormatDateTime() {
	stamp := types.NewUTCInstant(time.Date(2024, 7, 1, 23, 30, 0, 0, time.UTC))
	fmt.Println(clock.FormatDateTime(stamp))
	// Output: 02/07/2024 00:30:00
}

func ExampleFormatDateLong() {
	stamp := types.NewUTCInstant(time.Date(2024, 12, 31, 9, 30, 0, 0, time.UTC))
	fmt.Println(clock.FormatDateLong(stamp))
	// Output: Tuesday 31 December 2024
}

func ExampleToUTC() {
	// A form submission carries local civil time; store it as UTC.
	entered := types.NewNaiveInstant(time.Date(2024, 7, 2, 0, 30, 0, 0, time.UTC))
	stored, err := clock.ToUTC(entered)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(stored)
	// Output: 2024-07-01T23:30:00
}

func ExampleAddWorkingDays() {
	// Monday plus five working days skips one weekend.
	start, err := clock.DateFromDatePicker("01/01/2024")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(clock.AddWorkingDays(5, start))
	// Output: 2024-01-08
}

func ExampleAddMonths() {
	// There is no 30th of February: adding rolls over to the first of
	// the following month, while subtracting clamps to the month's
	// last day.
	fmt.Println(clock.AddMonths(1, types.NewUTCInstant(
		time.Date(2024, 1, 30, 9, 30, 0, 0, time.UTC),
	)))
	fmt.Println(clock.AddMonths(-1, types.NewUTCInstant(
		time.Date(2024, 3, 30, 9, 30, 0, 0, time.UTC),
	)))
	// Output:
	// 2024-03-01T09:30:00Z
	// 2024-02-29T09:30:00Z
}

func ExampleUnixTime() {
	fmt.Println(clock.UnixTime(types.NewUTCInstant(
		time.Date(1970, 1, 1, 0, 0, 1, 500000000, time.UTC),
	)))
	// Output: 1.5
}
