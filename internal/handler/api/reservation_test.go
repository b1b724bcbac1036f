//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"tablebook/internal/handler/api"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"
	"tablebook/tests/common/builder"
	"tablebook/tests/common/httptest"
	commandsmock "tablebook/tests/mock/commands"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBooking  *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
	restaurantID uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.restaurantID = uuid.New()

	handler := api.NewReservationHandler(s.mockBooking, s.mockQueries)
	s.router.POST("/api/restaurants/:id/reservations", handler.CreateReservation)
	s.router.GET("/api/restaurants/:id/reservations", handler.ListReservations)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) url() string {
	return fmt.Sprintf("/api/restaurants/%s/reservations", s.restaurantID)
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	reqBody := builder.NewReservationBuilder().BuildDTO()

	s.Run("success: returns 201 Created for a booked table", func() {
		reservationID := uuid.New()
		s.mockBooking.EXPECT().BookReservation(gomock.Any(), gomock.Any()).
			Return(&commands.BookingResult{Success: true, ReservationID: &reservationID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(), reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.True(response.Success)
		s.Equal(reservationID, *response.ReservationID)
	})

	s.Run("success: returns 200 OK with suggestions when the slot is taken", func() {
		s.mockBooking.EXPECT().BookReservation(gomock.Any(), gomock.Any()).
			Return(&commands.BookingResult{
				Success:        false,
				Error:          "We only have room for 2 more guests around 19:00 (78 of 80 seats are taken).",
				SuggestedTimes: []string{"18:30", "19:30"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(), reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Success)
		s.Nil(response.ReservationID)
		s.Equal([]string{"18:30", "19:30"}, response.SuggestedTimes)
	})

	s.Run("error: 400 Bad Request for a malformed restaurant id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/restaurants/not-a-uuid/reservations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid restaurant ID")
	})

	s.Run("error: 400 Bad Request for a missing required field", func() {
		incomplete := map[string]any{"customer_name": "Jamie Okafor"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(), incomplete, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 Unprocessable Entity for rejected domain input", func() {
		s.mockBooking.EXPECT().BookReservation(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidBookingInput).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(), reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid reservation details")
	})
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	s.Run("success: returns the day's reservations", func() {
		items := []*queries.ReservationListItem{
			builder.NewReservationBuilder().BuildListItem(),
			builder.NewReservationBuilder().WithPartySize(6).BuildListItem(),
		}
		s.mockQueries.EXPECT().ListByDate(gomock.Any(), s.restaurantID, "2025-06-20").
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url()+"?date=2025-06-20", nil, "")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(6, response[1].PartySize)
	})

	s.Run("error: 400 Bad Request without a date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date is required")
	})

	s.Run("error: 400 Bad Request for a malformed date", func() {
		s.mockQueries.EXPECT().ListByDate(gomock.Any(), s.restaurantID, "June 20").
			Return(nil, queries.ErrInvalidDateFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url()+"?date=June+20", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockQueries.EXPECT().ListByDate(gomock.Any(), s.restaurantID, "2025-06-20").
			Return(nil, errs.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url()+"?date=2025-06-20", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
