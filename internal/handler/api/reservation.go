package api

import (
	"errors"
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	booking      commands.BookingCommands
	reservations queries.ReservationQueries
}

func NewReservationHandler(booking commands.BookingCommands, reservations queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		booking:      booking,
		reservations: reservations,
	}
}

// @Summary Book a table
// @Description Create a reservation after re-checking availability
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Slot no longer available"
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /restaurants/{id}/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.booking.BookReservation(c.Request.Context(), req.ToInput(restaurantID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidBookingInput):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid reservation details",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// A rejected booking is a normal answer, not an HTTP error.
	status := http.StatusCreated
	if !result.Success {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingResult(result))
}

// @Summary List reservations for a day
// @Description List all of a restaurant's reservations for one date
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /restaurants/{id}/reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID",
		})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date is required",
		})
		return
	}

	items, err := h.reservations.ListByDate(c.Request.Context(), restaurantID, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDateFilter):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.ReservationListResponse, 0, len(items))
	for _, item := range items {
		response = append(response, resdto.FromReservationListItem(item))
	}
	c.JSON(http.StatusOK, response)
}
