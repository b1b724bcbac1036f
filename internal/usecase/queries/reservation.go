package queries

import (
	"context"

	"tablebook/internal/domain/schedule"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDateFilter = errs.New("invalid date filter")

// ReservationQueries serves the owner dashboard's day view.
type ReservationQueries interface {
	ListByDate(ctx context.Context, restaurantID uuid.UUID, date string) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) ListByDate(ctx context.Context, restaurantID uuid.UUID, date string) ([]*ReservationListItem, error) {
	if _, err := schedule.ParseDate(date, nil); err != nil {
		return nil, errs.Mark(err, ErrInvalidDateFilter)
	}
	return q.repo.ListByDate(ctx, restaurantID, date)
}
