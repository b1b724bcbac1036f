package queries

import (
	"context"

	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMenuItemNotFound = errs.New("menu item not found")

type MenuReadStore interface {
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*MenuItemView, error)
	FindItem(ctx context.Context, restaurantID, itemID uuid.UUID) (*MenuItemView, error)
}

type MenuQueries interface {
	ListItems(ctx context.Context, restaurantID uuid.UUID) ([]*MenuItemView, error)
	GetItem(ctx context.Context, restaurantID, itemID uuid.UUID) (*MenuItemView, error)
}

type menuQueriesImpl struct {
	repo MenuReadStore
}

func NewMenuQueries(repo MenuReadStore) MenuQueries {
	return &menuQueriesImpl{repo: repo}
}

func (q *menuQueriesImpl) ListItems(ctx context.Context, restaurantID uuid.UUID) ([]*MenuItemView, error) {
	return q.repo.ListByRestaurant(ctx, restaurantID)
}

func (q *menuQueriesImpl) GetItem(ctx context.Context, restaurantID, itemID uuid.UUID) (*MenuItemView, error) {
	item, err := q.repo.FindItem(ctx, restaurantID, itemID)
	if err != nil {
		return nil, errs.Mark(err, ErrMenuItemNotFound)
	}
	return item, nil
}
