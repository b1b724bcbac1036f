//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/restaurant"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"
	"tablebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailability struct {
	verdict *queries.Verdict
	calls   int
}

func (f *fakeAvailability) Check(_ context.Context, _ uuid.UUID, _, _ string, _ int) (*queries.Verdict, error) {
	f.calls++
	return f.verdict, nil
}

type fakeRestaurantQueries struct {
	view *queries.RestaurantView
	err  error
}

func (f *fakeRestaurantQueries) GetByID(_ context.Context, _ uuid.UUID) (*queries.RestaurantView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

type fakeReservationRepo struct {
	created []*reservation.Reservation
	err     error
}

func (f *fakeReservationRepo) Create(_ context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.created = append(f.created, res)
	return res.ID(), nil
}

type fakeNotificationRepo struct {
	jobs int
	err  error
}

func (f *fakeNotificationRepo) CreateJob(_ context.Context, _, _ string, _ []byte, _ time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.jobs++
	return nil
}

func bookingInput() commands.BookReservationInput {
	return commands.BookReservationInput{
		RestaurantID:  uuid.New(),
		CustomerName:  "Ren Park",
		CustomerPhone: "+1-555-0100",
		PartySize:     4,
		Date:          "2025-06-02",
		Time:          "19:00",
		Source:        reservation.SourceChat,
	}
}

func newBooking(av *fakeAvailability, repo *fakeReservationRepo, jobs *fakeNotificationRepo) commands.BookingCommands {
	rest := &fakeRestaurantQueries{view: builder.NewRestaurantBuilder().BuildView()}
	return commands.NewBookingCommands(av, rest, repo, jobs, clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)))
}

func TestBookReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("books and enqueues confirmation on a clear re-check", func(t *testing.T) {
		av := &fakeAvailability{verdict: &queries.Verdict{Available: true}}
		repo := &fakeReservationRepo{}
		jobs := &fakeNotificationRepo{}

		result, err := newBooking(av, repo, jobs).BookReservation(ctx, bookingInput())
		require.NoError(t, err)
		require.True(t, result.Success)
		require.NotNil(t, result.ReservationID)
		assert.Empty(t, result.Error)

		require.Len(t, repo.created, 1)
		created := repo.created[0]
		assert.Equal(t, *result.ReservationID, created.ID())
		assert.Equal(t, reservation.StatusConfirmed, created.Status())
		// Default duration resolved from settings, not from the caller.
		assert.Equal(t, restaurant.DefaultReservationDuration, created.DurationMin())
		// Timestamps come from the injected clock, never the zero value.
		assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), created.CreatedAt())
		assert.Equal(t, created.CreatedAt(), created.UpdatedAt())
		assert.Equal(t, 1, jobs.jobs)
		assert.Equal(t, 1, av.calls, "availability re-checked exactly once")
	})

	t.Run("never inserts when the re-check fails", func(t *testing.T) {
		av := &fakeAvailability{verdict: &queries.Verdict{
			Available:      false,
			Reason:         "We only have room for 2 more guests around 19:00 (78 of 80 seats are taken).",
			SuggestedTimes: []string{"18:30", "19:30"},
		}}
		repo := &fakeReservationRepo{}
		jobs := &fakeNotificationRepo{}

		result, err := newBooking(av, repo, jobs).BookReservation(ctx, bookingInput())
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Nil(t, result.ReservationID)
		assert.Contains(t, result.Error, "2 more guests")
		assert.Equal(t, []string{"18:30", "19:30"}, result.SuggestedTimes)
		assert.Empty(t, repo.created, "no write on rejected re-check")
		assert.Zero(t, jobs.jobs)
	})

	t.Run("insert failure reports generically", func(t *testing.T) {
		av := &fakeAvailability{verdict: &queries.Verdict{Available: true}}
		repo := &fakeReservationRepo{err: errs.New("duplicate key value violates unique constraint")}
		jobs := &fakeNotificationRepo{}

		result, err := newBooking(av, repo, jobs).BookReservation(ctx, bookingInput())
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Nil(t, result.ReservationID)
		assert.NotContains(t, result.Error, "constraint")
	})

	t.Run("failed confirmation enqueue does not unwind the booking", func(t *testing.T) {
		av := &fakeAvailability{verdict: &queries.Verdict{Available: true}}
		repo := &fakeReservationRepo{}
		jobs := &fakeNotificationRepo{err: errs.New("outbox unavailable")}

		result, err := newBooking(av, repo, jobs).BookReservation(ctx, bookingInput())
		require.NoError(t, err)
		assert.True(t, result.Success)
		require.Len(t, repo.created, 1)
	})
}
