//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"tablebook/internal/handler/api"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/queries"
	"tablebook/tests/common/httptest"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockAvailabilityQueries
	restaurantID uuid.UUID
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.restaurantID = uuid.New()

	handler := api.NewAvailabilityHandler(s.mockQueries)
	s.router.GET("/api/restaurants/:id/availability", handler.CheckAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestCheckAvailability() {
	url := fmt.Sprintf("/api/restaurants/%s/availability", s.restaurantID)

	s.Run("success: available slot answers available=true", func() {
		s.mockQueries.EXPECT().Check(gomock.Any(), s.restaurantID, "2025-06-20", "19:00", 4).
			Return(&queries.Verdict{Available: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router,
			http.MethodGet, url+"?date=2025-06-20&time=19:00&party_size=4", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.Empty(response.Reason)
	})

	s.Run("success: full slot answers with reason and suggestions, still 200", func() {
		s.mockQueries.EXPECT().Check(gomock.Any(), s.restaurantID, "2025-06-20", "19:00", 10).
			Return(&queries.Verdict{
				Available:      false,
				Reason:         "We only have room for 4 more guests around 19:00 (76 of 80 seats are taken).",
				SuggestedTimes: []string{"18:00", "21:00"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router,
			http.MethodGet, url+"?date=2025-06-20&time=19:00&party_size=10", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
		s.Contains(response.Reason, "4 more guests")
		s.Equal([]string{"18:00", "21:00"}, response.SuggestedTimes)
	})

	s.Run("error: 400 Bad Request when query params are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-06-20", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "required")
	})

	s.Run("error: 400 Bad Request for a malformed restaurant id", func() {
		rec := httptest.PerformRequest(s.T(), s.router,
			http.MethodGet, "/api/restaurants/42/availability?date=2025-06-20&time=19:00&party_size=4", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid restaurant ID")
	})
}
