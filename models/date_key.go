package models

import (
	"fmt"
	"time"
)

const DateKeyLayout = "2006-01-02"

// DateKey is a calendar day (YYYY-MM-DD). Orders are partitioned by it for
// daily reporting, and discounts use it for their validity window.
type DateKey string

// DateKeyOf returns the calendar day of t in t's own location.
func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyLayout))
}

func ParseDateKey(s string) (DateKey, error) {
	if _, err := time.Parse(DateKeyLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return DateKey(s), nil
}

func (k DateKey) String() string { return string(k) }

func (k DateKey) Valid() bool {
	_, err := time.Parse(DateKeyLayout, string(k))
	return err == nil
}

// StartOfDay returns 00:00:00.000 of the day in loc.
func (k DateKey) StartOfDay(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, string(k), loc)
}

// EndOfDay returns 23:59:59.999 of the day in loc.
func (k DateKey) EndOfDay(loc *time.Location) (time.Time, error) {
	start, err := k.StartOfDay(loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(start.Year(), start.Month(), start.Day(), 23, 59, 59, 999_000_000, loc), nil
}
