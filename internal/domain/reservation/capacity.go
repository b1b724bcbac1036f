package reservation

import (
	"fmt"

	"tablebook/internal/domain/restaurant"
	"tablebook/internal/domain/schedule"
)

// Occupant is an existing active reservation projected onto capacity math:
// its start in minutes since midnight, its own duration (0 means "use the
// restaurant default"), and the seats it holds.
type Occupant struct {
	StartMin    int
	DurationMin int
	PartySize   int
}

// CapacityResult reports whether a party fits and, when it does not, how
// full the room already is around the requested time.
type CapacityResult struct {
	HasCapacity   bool
	Reason        string
	CurrentGuests int
	MaxCapacity   int
}

// CapacityPolicy evaluates seat occupancy in a sliding window around a
// requested slot. All numbers come from the restaurant's resolved settings.
type CapacityPolicy struct {
	MaxTables          int
	SeatsPerTable      int
	DefaultDurationMin int
}

func PolicyFromSettings(s restaurant.CapacitySettings) CapacityPolicy {
	return CapacityPolicy{
		MaxTables:          s.MaxTables,
		SeatsPerTable:      s.SeatsPerTable,
		DefaultDurationMin: s.DefaultReservationDuration,
	}
}

func (p CapacityPolicy) MaxCapacity() int {
	return p.MaxTables * p.SeatsPerTable
}

// Evaluate sums the party sizes of existing reservations whose seated window
// overlaps [requestedMin − duration, requestedMin + duration] and rejects the
// new party when the total would exceed the room.
//
// A reservation overlaps when it starts before the window ends and ends after
// the requested time; its end is its own duration past its start, or the
// default duration when it has none recorded.
func (p CapacityPolicy) Evaluate(requestedMin, partySize int, existing []Occupant) CapacityResult {
	dur := p.DefaultDurationMin
	windowEnd := requestedMin + dur

	currentGuests := 0
	for _, o := range existing {
		odur := o.DurationMin
		if odur <= 0 {
			odur = dur
		}
		if o.StartMin < windowEnd && o.StartMin+odur > requestedMin {
			currentGuests += o.PartySize
		}
	}

	maxCapacity := p.MaxCapacity()
	if currentGuests+partySize > maxCapacity {
		remaining := maxCapacity - currentGuests
		if remaining < 0 {
			remaining = 0
		}
		return CapacityResult{
			HasCapacity:   false,
			Reason:        fmt.Sprintf("We only have room for %d more guests around %s (%d of %d seats are taken).", remaining, schedule.FormatMinutes(requestedMin), currentGuests, maxCapacity),
			CurrentGuests: currentGuests,
			MaxCapacity:   maxCapacity,
		}
	}

	return CapacityResult{
		HasCapacity:   true,
		CurrentGuests: currentGuests,
		MaxCapacity:   maxCapacity,
	}
}
