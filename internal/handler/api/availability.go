package api

import (
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
	}
}

// @Summary Check table availability
// @Description Check whether a table is available for a party at a date and time
// @Tags availability
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:mm)"
// @Param party_size query int true "Party size"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /restaurants/{id}/availability [get]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID",
		})
		return
	}

	var req reqdto.CheckAvailabilityRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date, time and party_size are required",
		})
		return
	}

	verdict, err := h.availability.Check(c.Request.Context(), restaurantID, req.Date, req.Time, req.PartySize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVerdict(verdict))
}
