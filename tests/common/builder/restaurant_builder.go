//go:build unit || e2e

package builder

import (
	"time"

	"tablebook/internal/domain/restaurant"
	"tablebook/internal/domain/schedule"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RestaurantBuilder struct {
	ID       uuid.UUID
	Name     string
	Timezone string
	Hours    schedule.WeeklyHours
	Raw      restaurant.RawSettings
}

func NewRestaurantBuilder() *RestaurantBuilder {
	return &RestaurantBuilder{
		ID:       uuid.New(),
		Name:     "Lupa Trattoria",
		Timezone: "UTC",
	}
}

func (b *RestaurantBuilder) WithHours(hours schedule.WeeklyHours) *RestaurantBuilder {
	b.Hours = hours
	return b
}

func (b *RestaurantBuilder) WithTimezone(tz string) *RestaurantBuilder {
	b.Timezone = tz
	return b
}

func (b *RestaurantBuilder) BuildView() *queries.RestaurantView {
	raw := b.Raw
	if b.Hours != nil {
		raw.Capacity = &struct {
			MaxTables                  *int                 `json:"maxTables"`
			SeatsPerTable              *int                 `json:"seatsPerTable"`
			DefaultReservationDuration *int                 `json:"defaultReservationDuration"`
			OperatingHours             schedule.WeeklyHours `json:"operatingHours"`
		}{OperatingHours: b.Hours}
	}

	now := time.Now()
	return &queries.RestaurantView{
		ID:        b.ID,
		Name:      b.Name,
		Timezone:  b.Timezone,
		Address:   "12 Mulberry St",
		Phone:     "+1-555-0100",
		Settings:  restaurant.Resolve(raw),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
