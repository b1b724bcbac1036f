package schedule

import (
	"fmt"
	"time"
)

// LastSeatingOffsetMin is the fixed house policy: the last bookable time of a
// day is closing time minus this many minutes.
const LastSeatingOffsetMin = 60

// DayHours is one weekday's opening window. When Closed is true the open and
// close values are ignored.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// WeeklyHours maps lowercase weekday names to opening windows. A nil map, or
// a missing day entry, means the restaurant takes bookings at any time that
// day (permissive default).
type WeeklyHours map[string]DayHours

// CheckResult is the operating-hours verdict for one requested slot.
type CheckResult struct {
	IsOpen bool
	Reason string
	Hours  *DayHours
}

// BookableWindow returns the bookable range for the given date as minutes
// since midnight. The second return is false when the day is closed. Absent
// hours yield the whole day.
func (w WeeklyHours) BookableWindow(date time.Time) (openMin, lastMin int, ok bool) {
	if w == nil {
		return 0, MinutesPerDay - 1, true
	}
	day, found := w[DayName(date)]
	if !found {
		return 0, MinutesPerDay - 1, true
	}
	if day.Closed {
		return 0, 0, false
	}

	openMin, err := MinutesOfDay(day.Open)
	if err != nil {
		return 0, MinutesPerDay - 1, true
	}
	closeMin, err := MinutesOfDay(day.Close)
	if err != nil {
		return 0, MinutesPerDay - 1, true
	}
	return openMin, closeMin - LastSeatingOffsetMin, true
}

// Check decides whether a reservation can start at the requested clock time
// on the given date. The last seating is one hour before close, inclusive.
func (w WeeklyHours) Check(date time.Time, timeStr string) CheckResult {
	if w == nil {
		return CheckResult{IsOpen: true}
	}

	dayName := DayName(date)
	day, found := w[dayName]
	if !found {
		return CheckResult{IsOpen: true}
	}
	if day.Closed {
		return CheckResult{
			IsOpen: false,
			Reason: fmt.Sprintf("We are closed on %ss.", titleDay(dayName)),
		}
	}

	requested, err := MinutesOfDay(timeStr)
	if err != nil {
		return CheckResult{IsOpen: false, Reason: "Please provide a time in HH:mm format."}
	}
	openMin, err := MinutesOfDay(day.Open)
	if err != nil {
		return CheckResult{IsOpen: true, Hours: &day}
	}
	closeMin, err := MinutesOfDay(day.Close)
	if err != nil {
		return CheckResult{IsOpen: true, Hours: &day}
	}

	if requested < openMin {
		return CheckResult{
			IsOpen: false,
			Reason: fmt.Sprintf("We open at %s on %ss.", day.Open, titleDay(dayName)),
			Hours:  &day,
		}
	}

	lastSeating := closeMin - LastSeatingOffsetMin
	if requested > lastSeating {
		return CheckResult{
			IsOpen: false,
			Reason: fmt.Sprintf("Our last reservation on %ss is at %s (we close at %s).",
				titleDay(dayName), FormatMinutes(lastSeating), day.Close),
			Hours: &day,
		}
	}

	return CheckResult{IsOpen: true, Hours: &day}
}

func titleDay(day string) string {
	if day == "" {
		return day
	}
	return string(day[0]-'a'+'A') + day[1:]
}
