//go:build unit

package reservation_test

import (
	"testing"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/restaurant"

	"github.com/stretchr/testify/assert"
)

func defaultPolicy() reservation.CapacityPolicy {
	return reservation.CapacityPolicy{
		MaxTables:          20,
		SeatsPerTable:      4,
		DefaultDurationMin: 90,
	}
}

func TestCapacityPolicy_MaxCapacity(t *testing.T) {
	assert.Equal(t, 80, defaultPolicy().MaxCapacity())

	fromSettings := reservation.PolicyFromSettings(restaurant.CapacitySettings{
		MaxTables:                  10,
		SeatsPerTable:              6,
		DefaultReservationDuration: 120,
	})
	assert.Equal(t, 60, fromSettings.MaxCapacity())
	assert.Equal(t, 120, fromSettings.DefaultDurationMin)
}

func TestCapacityPolicy_Evaluate(t *testing.T) {
	policy := defaultPolicy()

	t.Run("empty room seats a full house", func(t *testing.T) {
		res := policy.Evaluate(19*60, 80, nil)
		assert.True(t, res.HasCapacity)
		assert.Equal(t, 0, res.CurrentGuests)
		assert.Equal(t, 80, res.MaxCapacity)
	})

	t.Run("one guest over the room is rejected", func(t *testing.T) {
		res := policy.Evaluate(19*60, 81, nil)
		assert.False(t, res.HasCapacity)
		assert.Contains(t, res.Reason, "80")
	})

	t.Run("overlapping window counts existing guests", func(t *testing.T) {
		existing := []reservation.Occupant{
			{StartMin: 19 * 60, DurationMin: 90, PartySize: 10},
		}

		// 19:30 overlaps a 19:00 reservation that runs until 20:30.
		res := policy.Evaluate(19*60+30, 40, existing)
		assert.True(t, res.HasCapacity)
		assert.Equal(t, 10, res.CurrentGuests)

		res = policy.Evaluate(19*60+30, 75, existing)
		assert.False(t, res.HasCapacity)
		assert.Equal(t, 10, res.CurrentGuests)
		assert.Contains(t, res.Reason, "70")
		assert.Contains(t, res.Reason, "19:30")
	})

	t.Run("non-overlapping morning slot ignores the evening party", func(t *testing.T) {
		existing := []reservation.Occupant{
			{StartMin: 19 * 60, DurationMin: 90, PartySize: 10},
		}

		res := policy.Evaluate(9*60, 80, existing)
		assert.True(t, res.HasCapacity)
		assert.Equal(t, 0, res.CurrentGuests)
	})

	t.Run("missing occupant duration falls back to the default", func(t *testing.T) {
		existing := []reservation.Occupant{
			{StartMin: 18 * 60, DurationMin: 0, PartySize: 30},
		}

		// Default 90 min → the 18:00 party holds seats until 19:30.
		res := policy.Evaluate(19*60, 60, existing)
		assert.False(t, res.HasCapacity)
		assert.Equal(t, 30, res.CurrentGuests)

		// 19:30 + window start exactly at the occupant's end: no overlap.
		res = policy.Evaluate(21*60, 60, existing)
		assert.True(t, res.HasCapacity)
	})

	t.Run("window boundary is exclusive on both edges", func(t *testing.T) {
		existing := []reservation.Occupant{
			{StartMin: 20*60 + 30, DurationMin: 90, PartySize: 80},
		}

		// Requested 19:00, window end 20:30; occupant starts exactly then.
		res := policy.Evaluate(19*60, 4, existing)
		assert.True(t, res.HasCapacity)
	})
}
