//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() reservation.NewReservationInput {
	return reservation.NewReservationInput{
		RestaurantID:  uuid.New(),
		CustomerName:  "Dana Osei",
		CustomerPhone: "+1-555-0142",
		PartySize:     4,
		Date:          "2025-06-02",
		Time:          "19:00",
		DurationMin:   90,
		Source:        reservation.SourceWebsite,
	}
}

type entityCase struct {
	name   string
	mutate func(*reservation.NewReservationInput)
	errIs  error
}

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
		actual, err := reservation.NewReservation(validInput(), now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusConfirmed, actual.Status())
		assert.Equal(t, "Dana Osei", actual.CustomerName())
		assert.Equal(t, 90, actual.DurationMin())
		assert.True(t, actual.Status().IsActive())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Equal(t, now, actual.UpdatedAt())
	})

	t.Run("party size validation", func(t *testing.T) {
		runEntityCases(t, []entityCase{
			{
				name:   "minimum valid party",
				mutate: func(in *reservation.NewReservationInput) { in.PartySize = 1 },
			},
			{
				name:   "maximum valid party",
				mutate: func(in *reservation.NewReservationInput) { in.PartySize = 50 },
			},
			{
				name:   "zero party",
				mutate: func(in *reservation.NewReservationInput) { in.PartySize = 0 },
				errIs:  reservation.ErrInvalidPartySize,
			},
			{
				name:   "over maximum party",
				mutate: func(in *reservation.NewReservationInput) { in.PartySize = 51 },
				errIs:  reservation.ErrInvalidPartySize,
			},
		})
	})

	t.Run("customer validation", func(t *testing.T) {
		runEntityCases(t, []entityCase{
			{
				name:   "blank name",
				mutate: func(in *reservation.NewReservationInput) { in.CustomerName = "   " },
				errIs:  reservation.ErrEmptyCustomer,
			},
			{
				name:   "missing phone",
				mutate: func(in *reservation.NewReservationInput) { in.CustomerPhone = "" },
				errIs:  reservation.ErrEmptyCustomer,
			},
		})
	})

	t.Run("slot validation", func(t *testing.T) {
		runEntityCases(t, []entityCase{
			{
				name:   "malformed date",
				mutate: func(in *reservation.NewReservationInput) { in.Date = "June 2nd" },
				errIs:  reservation.ErrInvalidDate,
			},
			{
				name:   "malformed time",
				mutate: func(in *reservation.NewReservationInput) { in.Time = "7pm" },
				errIs:  reservation.ErrInvalidTime,
			},
			{
				name:   "zero duration",
				mutate: func(in *reservation.NewReservationInput) { in.DurationMin = 0 },
				errIs:  reservation.ErrInvalidDuration,
			},
			{
				name:   "unknown source",
				mutate: func(in *reservation.NewReservationInput) { in.Source = "carrier_pigeon" },
				errIs:  reservation.ErrInvalidSource,
			},
		})
	})

	t.Run("empty source defaults to website", func(t *testing.T) {
		in := validInput()
		in.Source = ""
		actual, err := reservation.NewReservation(in, time.Now())
		require.NoError(t, err)
		assert.Equal(t, reservation.SourceWebsite, actual.Source())
	})
}

func runEntityCases(t *testing.T, cases []entityCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			actual, err := reservation.NewReservation(in, time.Now())
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}

func TestStatus(t *testing.T) {
	assert.True(t, reservation.StatusPending.IsActive())
	assert.True(t, reservation.StatusConfirmed.IsActive())
	assert.True(t, reservation.StatusSeated.IsActive())
	assert.False(t, reservation.StatusCompleted.IsActive())
	assert.False(t, reservation.StatusCancelled.IsActive())
	assert.False(t, reservation.StatusNoShow.IsActive())

	assert.True(t, reservation.StatusNoShow.IsValid())
	assert.False(t, reservation.Status("lost").IsValid())
}
