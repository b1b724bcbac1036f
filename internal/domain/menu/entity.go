package menu

import (
	"time"

	"github.com/google/uuid"
)

// Item is a live menu item. PriceCents is the only price the ordering path
// trusts; anything a client submits is discarded.
type Item struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	name         string
	description  string
	category     string
	priceCents   int64
	available    bool
	createdAt    time.Time
	updatedAt    time.Time
}

func ReconstructItem(id, restaurantID uuid.UUID, name, description, category string, priceCents int64, available bool, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		description:  description,
		category:     category,
		priceCents:   priceCents,
		available:    available,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (i *Item) ID() uuid.UUID           { return i.id }
func (i *Item) RestaurantID() uuid.UUID { return i.restaurantID }
func (i *Item) Name() string            { return i.name }
func (i *Item) Description() string     { return i.description }
func (i *Item) Category() string        { return i.category }
func (i *Item) PriceCents() int64       { return i.priceCents }
func (i *Item) Available() bool         { return i.available }
func (i *Item) CreatedAt() time.Time    { return i.createdAt }
func (i *Item) UpdatedAt() time.Time    { return i.updatedAt }
