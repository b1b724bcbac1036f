package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidBookingInput     = errs.New("invalid booking input")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const bookingFailureMessage = "We couldn't complete your reservation. Please try again or call us."

type BookReservationInput struct {
	RestaurantID    uuid.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	PartySize       int
	Date            string
	Time            string
	SpecialRequests *string
	Source          reservation.Source
}

// BookingResult mirrors the booking contract: when Success is false, Error
// carries the human-readable reason and nothing was written.
type BookingResult struct {
	Success        bool       `json:"success"`
	ReservationID  *uuid.UUID `json:"reservationId,omitempty"`
	Error          string     `json:"error,omitempty"`
	SuggestedTimes []string   `json:"suggestedTimes,omitempty"`
}

type BookingCommands interface {
	BookReservation(ctx context.Context, in BookReservationInput) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	availability  queries.AvailabilityQueries
	restaurants   queries.RestaurantQueries
	reservations  ReservationRepository
	notifications NotificationRepository
	clock         clock.Clock
}

func NewBookingCommands(
	availability queries.AvailabilityQueries,
	restaurants queries.RestaurantQueries,
	reservations ReservationRepository,
	notifications NotificationRepository,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		availability:  availability,
		restaurants:   restaurants,
		reservations:  reservations,
		notifications: notifications,
		clock:         clock,
	}
}

// BookReservation re-runs the full availability check immediately before the
// insert. Two concurrent requests can still both pass the re-check and both
// insert, because check and insert are not one atomic operation; the
// double-check narrows that window without eliminating it. Replacing this
// with a capacity-guarded conditional insert is a product decision, not a
// code cleanup.
func (b *bookingCommandsImpl) BookReservation(ctx context.Context, in BookReservationInput) (*BookingResult, error) {
	verdict, err := b.availability.Check(ctx, in.RestaurantID, in.Date, in.Time, in.PartySize)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !verdict.Available {
		return &BookingResult{
			Success:        false,
			Error:          verdict.Reason,
			SuggestedTimes: verdict.SuggestedTimes,
		}, nil
	}

	rest, err := b.restaurants.GetByID(ctx, in.RestaurantID)
	if err != nil {
		return &BookingResult{Success: false, Error: bookingFailureMessage}, nil
	}

	entity, err := reservation.NewReservation(reservation.NewReservationInput{
		RestaurantID:    in.RestaurantID,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		PartySize:       in.PartySize,
		Date:            in.Date,
		Time:            in.Time,
		DurationMin:     rest.Settings.Capacity.DefaultReservationDuration,
		Source:          in.Source,
		SpecialRequests: in.SpecialRequests,
	}, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	id, err := b.reservations.Create(ctx, entity)
	if err != nil {
		slog.Error("reservation insert failed",
			"restaurant_id", in.RestaurantID, "date", in.Date, "time", in.Time, "error", err.Error())
		return &BookingResult{Success: false, Error: bookingFailureMessage}, nil
	}

	b.enqueueConfirmation(ctx, id, entity)

	return &BookingResult{Success: true, ReservationID: &id}, nil
}

// Confirmation delivery is an outbox job; a failed enqueue never unwinds a
// booked table.
func (b *bookingCommandsImpl) enqueueConfirmation(ctx context.Context, id uuid.UUID, res *reservation.Reservation) {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": id,
		"type":           "reservation_confirmed",
		"customer_name":  res.CustomerName(),
		"date":           res.Date(),
		"time":           res.Time(),
		"party_size":     res.PartySize(),
	})
	if err != nil {
		slog.Warn("failed to marshal confirmation payload", "reservation_id", id, "error", err.Error())
		return
	}

	kind := "sms"
	if res.CustomerEmail() != nil {
		kind = "email"
	}
	if err := b.notifications.CreateJob(ctx, kind, "reservation_confirmed", payload, b.clock.Now()); err != nil {
		slog.Warn("failed to enqueue confirmation job", "reservation_id", id, "error", err.Error())
	}
}
