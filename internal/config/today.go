package config

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// LoadLocation loads an IANA timezone. Empty or "Local" is the system zone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// TodayAt returns the calendar date of now in the given timezone.
func TodayAt(timezone string, now time.Time) (civil.Date, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return civil.DateOf(now.In(loc)), nil
}

// Today returns the current calendar date in the given timezone.
func Today(timezone string) (civil.Date, error) {
	return TodayAt(timezone, time.Now())
}
