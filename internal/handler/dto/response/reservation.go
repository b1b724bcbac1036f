package response

import (
	"time"

	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	Success        bool       `json:"success"`
	ReservationID  *uuid.UUID `json:"reservationId,omitempty"`
	Error          string     `json:"error,omitempty"`
	SuggestedTimes []string   `json:"suggestedTimes,omitempty"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		Success:        r.Success,
		ReservationID:  r.ReservationID,
		Error:          r.Error,
		SuggestedTimes: r.SuggestedTimes,
	}
}

type ReservationListResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	PartySize       int       `json:"partySize"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMin     int       `json:"durationMin"`
	Status          string    `json:"status"`
	Source          string    `json:"source"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromReservationListItem(item *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:              item.ID,
		CustomerName:    item.CustomerName,
		CustomerPhone:   item.CustomerPhone,
		PartySize:       item.PartySize,
		Date:            item.Date,
		Time:            item.Time,
		DurationMin:     item.DurationMin,
		Status:          item.Status,
		Source:          item.Source,
		SpecialRequests: item.SpecialRequests,
		CreatedAt:       item.CreatedAt,
	}
}
