package queries

import (
	"context"

	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRestaurantNotFound = errs.New("restaurant not found")

type RestaurantQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
}

type restaurantQueriesImpl struct {
	repo RestaurantReadStore
}

func NewRestaurantQueries(repo RestaurantReadStore) RestaurantQueries {
	return &restaurantQueriesImpl{repo: repo}
}

func (q *restaurantQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrRestaurantNotFound)
	}
	return view, nil
}
