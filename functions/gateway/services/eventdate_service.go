package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bcampbell/fuzzytime"
	"github.com/itlightning/dateparse"
)

// getCurrentTime returns the current time, or a frozen time if GO_ENV=test
func getCurrentTime() time.Time {
	if os.Getenv("GO_ENV") == "test" {
		// Freeze time to September 11, 2025 for consistent test results
		return time.Date(2025, 9, 11, 15, 0, 0, 0, time.UTC)
	}
	return time.Now()
}

// Today returns the current calendar day at midnight UTC, the reference
// point for the upcoming/ongoing/past windows.
func Today() time.Time {
	now := getCurrentTime()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseEventDay parses a stored event date into a midnight-UTC calendar
// day. Activities carry no time-of-day semantics, so any clock portion is
// discarded. dateparse handles the common formats; fuzzytime catches the
// sloppier strings scraped forms produce.
func ParseEventDay(input string) (time.Time, error) {
	cleaned := strings.TrimSpace(input)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty event date")
	}

	dt, err := dateparse.ParseAny(cleaned)
	if err == nil && dt.Year() != 0 {
		year, month, day := dt.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
	}

	fuzzy, _, err := fuzzytime.Extract(cleaned)
	if err != nil || fuzzy.Empty() {
		return time.Time{}, fmt.Errorf("both dateparse and fuzzytime failed to parse: %s", input)
	}
	if !fuzzy.Date.HasYear() || !fuzzy.Date.HasMonth() || !fuzzy.Date.HasDay() {
		return time.Time{}, fmt.Errorf("incomplete date in: %s", input)
	}

	return time.Date(fuzzy.Date.Year(), time.Month(fuzzy.Date.Month()), fuzzy.Date.Day(), 0, 0, 0, 0, time.UTC), nil
}
