//go:build unit || e2e

package builder

import (
	"time"

	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	RestaurantID  uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	PartySize     int
	Date          string
	Time          string
	DurationMin   int
	Source        string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		RestaurantID:  uuid.New(),
		CustomerName:  "Jamie Okafor",
		CustomerPhone: "+1-555-0123",
		PartySize:     2,
		Date:          "2025-06-20",
		Time:          "19:00",
		DurationMin:   90,
		Source:        "website",
	}
}

func (b *ReservationBuilder) WithPartySize(size int) *ReservationBuilder {
	b.PartySize = size
	return b
}

func (b *ReservationBuilder) WithSlot(date, timeStr string) *ReservationBuilder {
	b.Date = date
	b.Time = timeStr
	return b
}

func (b *ReservationBuilder) WithRestaurant(id uuid.UUID) *ReservationBuilder {
	b.RestaurantID = id
	return b
}

func (b *ReservationBuilder) BuildDTO() map[string]any {
	return map[string]any{
		"customer_name":  b.CustomerName,
		"customer_phone": b.CustomerPhone,
		"party_size":     b.PartySize,
		"date":           b.Date,
		"time":           b.Time,
	}
}

func (b *ReservationBuilder) BuildInput() commands.BookReservationInput {
	return commands.BookReservationInput{
		RestaurantID:  b.RestaurantID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		PartySize:     b.PartySize,
		Date:          b.Date,
		Time:          b.Time,
		Source:        "website",
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:            uuid.New(),
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		PartySize:     b.PartySize,
		Date:          b.Date,
		Time:          b.Time,
		DurationMin:   b.DurationMin,
		Status:        "confirmed",
		Source:        b.Source,
		CreatedAt:     time.Now(),
	}
}
