package queries

import (
	"time"

	"tablebook/internal/domain/restaurant"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RestaurantView struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Timezone  string              `json:"timezone"`
	Address   string              `json:"address"`
	Phone     string              `json:"phone"`
	Settings  restaurant.Settings `json:"-"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Location resolves the restaurant's timezone, falling back to UTC.
func (v *RestaurantView) Location() *time.Location {
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ActiveReservation is the projection of a seat-holding reservation that
// capacity math consumes.
type ActiveReservation struct {
	Time        string
	DurationMin int
	PartySize   int
}

type ReservationListItem struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	PartySize       int       `json:"party_size"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMin     int       `json:"duration_min"`
	Status          string    `json:"status"`
	Source          string    `json:"source"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type MenuItemView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	PriceCents  int64     `json:"price_cents"`
	Available   bool      `json:"available"`
}

// Verdict is the availability answer. It is never persisted.
type Verdict struct {
	Available      bool     `json:"available"`
	Reason         string   `json:"reason,omitempty"`
	SuggestedTimes []string `json:"suggestedTimes,omitempty"`
}
