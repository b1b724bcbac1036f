package restaurant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("restaurant name cannot be empty")

type Restaurant struct {
	id        uuid.UUID
	name      string
	timezone  string
	address   string
	phone     string
	settings  Settings
	createdAt time.Time
	updatedAt time.Time
}

func NewRestaurant(id uuid.UUID, name, timezone, address, phone string, settings Settings, createdAt, updatedAt time.Time) (*Restaurant, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if timezone == "" {
		timezone = "UTC"
	}
	return &Restaurant{
		id:        id,
		name:      name,
		timezone:  timezone,
		address:   address,
		phone:     phone,
		settings:  settings,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Restaurant) ID() uuid.UUID        { return r.id }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) Timezone() string     { return r.timezone }
func (r *Restaurant) Address() string      { return r.address }
func (r *Restaurant) Phone() string        { return r.phone }
func (r *Restaurant) Settings() Settings   { return r.settings }
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time { return r.updatedAt }

// Location resolves the restaurant's timezone, falling back to UTC when the
// stored zone name is unknown to the host.
func (r *Restaurant) Location() *time.Location {
	loc, err := time.LoadLocation(r.timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
