package utils

import (
	"strings"
	"time"

	"github.com/tanabodee/attendly/internal/constants"
)

// ParseRecordTimestamp parses a portal timestamp (DD/MM/YYYY HH:mm:ss) in the
// local timezone. The portal renders wall-clock times for the site's zone,
// which is assumed to be the user's zone.
func ParseRecordTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(constants.RecordTimestampFormat, s, time.Local)
}

// RecordDate returns the date portion (DD/MM/YYYY) of a portal timestamp
// without validating it.
func RecordDate(timestamp string) string {
	date, _, _ := strings.Cut(timestamp, " ")
	return date
}

// RecordClock returns the time portion (HH:mm:ss) of a portal timestamp, or
// the empty string when there is none.
func RecordClock(timestamp string) string {
	_, clock, _ := strings.Cut(timestamp, " ")
	return clock
}

// ClockString formats a time as the schedule's HH:mm rendering.
func ClockString(t time.Time) string {
	return t.Format(constants.ClockFormat)
}

// MinutesOfDay returns minutes elapsed since local midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ParseClockToMinutes parses an HH:mm string into minutes from midnight. It
// doubles as the clock-format validator for schedule configuration.
func ParseClockToMinutes(clock string) (int, error) {
	t, err := time.Parse(constants.ClockFormat, clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
