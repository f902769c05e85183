package main

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// parseDateFlag parses a YYYY-MM-DD value in the local time zone.
func parseDateFlag(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return parsed, nil
}

// parseClockOnDate parses an HH:MM value onto the given day. "24:00" names
// the next midnight, which the clock layout itself cannot express.
func parseClockOnDate(date time.Time, value string) (time.Time, error) {
	if value == "24:00" {
		return time.Date(date.Year(), date.Month(), date.Day()+1,
			0, 0, 0, 0, date.Location()), nil
	}
	parsed, err := time.ParseInLocation(clockLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}
