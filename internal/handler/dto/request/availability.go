package request

type CheckAvailabilityRequest struct {
	Date      string `form:"date" binding:"required"`
	Time      string `form:"time" binding:"required"`
	PartySize int    `form:"party_size" binding:"required"`
}
