package queries

import (
	"context"
	"fmt"
	"log/slog"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/schedule"
	"tablebook/internal/pkg/clock"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type RestaurantReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
}

type ReservationReadStore interface {
	// ActiveByDate returns the seat-holding reservations
	// (pending/confirmed/seated) for one restaurant-local calendar day.
	ActiveByDate(ctx context.Context, restaurantID uuid.UUID, date string) ([]ActiveReservation, error)
	ListByDate(ctx context.Context, restaurantID uuid.UUID, date string) ([]*ReservationListItem, error)
}

// AvailabilityQueries is the single availability entry point, shared by the
// HTTP surface, the booking re-check, and the assistant's tool.
type AvailabilityQueries interface {
	Check(ctx context.Context, restaurantID uuid.UUID, date, timeStr string, partySize int) (*Verdict, error)
}

type availabilityQueriesImpl struct {
	restaurants  RestaurantReadStore
	reservations ReservationReadStore
	clock        clock.Clock
}

func NewAvailabilityQueries(restaurants RestaurantReadStore, reservations ReservationReadStore, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		restaurants:  restaurants,
		reservations: reservations,
		clock:        clock,
	}
}

// Check is read-only and safe to call repeatedly, including immediately
// before a write. Validation short-circuits on the first failure.
func (q *availabilityQueriesImpl) Check(ctx context.Context, restaurantID uuid.UUID, date, timeStr string, partySize int) (*Verdict, error) {
	if _, err := schedule.ParseDate(date, nil); err != nil {
		return &Verdict{Available: false, Reason: "Please provide a date in YYYY-MM-DD format."}, nil
	}

	if _, err := schedule.MinutesOfDay(timeStr); err != nil {
		return &Verdict{Available: false, Reason: "Please provide a time in HH:mm format."}, nil
	}

	if partySize < reservation.MinPartySize || partySize > reservation.MaxPartySize {
		return &Verdict{
			Available: false,
			Reason: fmt.Sprintf("Party size must be between %d and %d guests.",
				reservation.MinPartySize, reservation.MaxPartySize),
		}, nil
	}

	rest, err := q.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return &Verdict{Available: false, Reason: "Sorry, we couldn't check availability for that restaurant."}, nil
	}

	// "Today" is the restaurant's calendar day, not the server's.
	// YYYY-MM-DD compares lexically, so this is a midnight comparison.
	today := q.clock.Now().In(rest.Location()).Format(dateLayout)
	if date < today {
		return &Verdict{Available: false, Reason: "We can't take reservations for past dates."}, nil
	}

	localDate, err := schedule.ParseDate(date, rest.Location())
	if err != nil {
		return &Verdict{Available: false, Reason: "Please provide a date in YYYY-MM-DD format."}, nil
	}

	hours := rest.Settings.Capacity.OperatingHours
	hoursCheck := hours.Check(localDate, timeStr)
	if !hoursCheck.IsOpen {
		return &Verdict{Available: false, Reason: hoursCheck.Reason}, nil
	}

	requestedMin, _ := schedule.MinutesOfDay(timeStr)
	policy := reservation.PolicyFromSettings(rest.Settings.Capacity)

	active, err := q.reservations.ActiveByDate(ctx, restaurantID, date)
	if err != nil {
		// Deliberate fail-open: a transient read failure must not block
		// bookings. The booking write path still surfaces its own errors.
		slog.Warn("capacity read failed, treating slot as available",
			"restaurant_id", restaurantID, "date", date, "error", err.Error())
		return &Verdict{Available: true}, nil
	}

	occupants := toOccupants(active)
	capResult := policy.Evaluate(requestedMin, partySize, occupants)
	if capResult.HasCapacity {
		return &Verdict{Available: true}, nil
	}

	verdict := &Verdict{Available: false, Reason: capResult.Reason}
	if openMin, lastMin, ok := hours.BookableWindow(localDate); ok {
		verdict.SuggestedTimes = reservation.SuggestTimes(requestedMin, openMin, lastMin, func(candidateMin int) bool {
			return policy.Evaluate(candidateMin, partySize, occupants).HasCapacity
		})
	}
	return verdict, nil
}

func toOccupants(active []ActiveReservation) []reservation.Occupant {
	occupants := make([]reservation.Occupant, 0, len(active))
	for _, a := range active {
		startMin, err := schedule.MinutesOfDay(a.Time)
		if err != nil {
			continue
		}
		occupants = append(occupants, reservation.Occupant{
			StartMin:    startMin,
			DurationMin: a.DurationMin,
			PartySize:   a.PartySize,
		})
	}
	return occupants
}
