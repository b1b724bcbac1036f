package request

import (
	"strings"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerPhone   string  `json:"customer_phone" binding:"required"`
	CustomerEmail   *string `json:"customer_email,omitempty"`
	PartySize       int     `json:"party_size" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	Source          string  `json:"source,omitempty"`
}

func (r CreateReservationRequest) ToInput(restaurantID uuid.UUID) commands.BookReservationInput {
	return commands.BookReservationInput{
		RestaurantID:    restaurantID,
		CustomerName:    strings.TrimSpace(r.CustomerName),
		CustomerPhone:   strings.TrimSpace(r.CustomerPhone),
		CustomerEmail:   trimmedPtr(r.CustomerEmail),
		PartySize:       r.PartySize,
		Date:            r.Date,
		Time:            r.Time,
		SpecialRequests: trimmedPtr(r.SpecialRequests),
		Source:          reservation.Source(r.Source),
	}
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
