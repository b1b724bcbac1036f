package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// MinutesPerDay bounds every clock-time calculation in this package.
	MinutesPerDay = 24 * 60

	dateLayout = "2006-01-02"
)

// MinutesOfDay converts an "HH:mm" clock time into minutes since midnight.
func MinutesOfDay(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", hhmm)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hhmm)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", hhmm)
	}

	return hour*60 + minute, nil
}

// FormatMinutes renders minutes since midnight back to "HH:mm".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseDate parses a "YYYY-MM-DD" calendar day in the given location,
// anchored at noon so that day-of-week resolution cannot shift across a
// timezone boundary.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return t.Add(12 * time.Hour), nil
}

// DayName returns the lowercase weekday key ("monday".."sunday") used by
// WeeklyHours for the given instant.
func DayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// Midnight truncates an instant to the start of its calendar day in its own
// location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
