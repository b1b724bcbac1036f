//go:build e2e

package reservation_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"tablebook/internal/handler/dto/request"
	"tablebook/internal/handler/dto/response"
	"tablebook/tests/common/authtest"
	"tablebook/tests/common/dbtest"
	"tablebook/tests/common/httptest"
	"tablebook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/restaurants/%s/reservations"
	availabilityURL = "/api/restaurants/%s/availability?date=%s&time=%s&party_size=%d"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// nextWednesday returns the next Wednesday at least a week out, so the
// fixture hours (17:00-22:00 on weekdays) apply regardless of when the
// suite runs.
func nextWednesday() string {
	d := time.Now().AddDate(0, 0, 7)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("guest can book a table", func() {
		t := s.T()

		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Lupa Trattoria", dbtest.DefaultSettingsJSON)
		date := nextWednesday()

		reqBody := request.CreateReservationRequest{
			CustomerName:  "Ada Moreno",
			CustomerPhone: "555-0134",
			PartySize:     2,
			Date:          date,
			Time:          "18:00",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(reservationsURL, restaurantID), reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var booked response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &booked))
		require.True(t, booked.Success)
		require.NotNil(t, booked.ReservationID)

		ctx := context.Background()
		var status, source string
		var durationMin int
		err := s.DB.QueryRow(ctx,
			"SELECT status, source, duration_min FROM reservations WHERE id = $1",
			*booked.ReservationID).Scan(&status, &source, &durationMin)
		require.NoError(t, err)
		require.Equal(t, "confirmed", status)
		require.Equal(t, "website", source)
		require.Equal(t, 90, durationMin)

		var jobs int
		err = s.DB.QueryRow(ctx,
			"SELECT COUNT(*) FROM notification_jobs WHERE status = 'pending'").Scan(&jobs)
		require.NoError(t, err)
		require.Equal(t, 1, jobs, "confirmation job should be enqueued")
	})

	s.Run("booking before opening hours is rejected with alternatives", func() {
		t := s.T()

		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Lupa Trattoria", dbtest.DefaultSettingsJSON)

		reqBody := request.CreateReservationRequest{
			CustomerName:  "Ada Moreno",
			CustomerPhone: "555-0134",
			PartySize:     2,
			Date:          nextWednesday(),
			Time:          "16:00",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(reservationsURL, restaurantID), reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rejected response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rejected))
		require.False(t, rejected.Success)
		require.NotEmpty(t, rejected.Error)
		require.NotEmpty(t, rejected.SuggestedTimes)

		ctx := context.Background()
		var count int
		require.NoError(t, s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM reservations").Scan(&count))
		require.Zero(t, count, "rejected booking must not insert a row")
	})

	s.Run("full dining room rejects the booking and suggests later times", func() {
		t := s.T()

		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Lupa Trattoria", dbtest.DefaultSettingsJSON)
		date := nextWednesday()

		// Two 4-tops at 18:00 saturate the 2-table, 8-seat fixture.
		dbtest.CreateTestReservation(t, s.DB, restaurantID, date, "18:00", 4, "confirmed")
		dbtest.CreateTestReservation(t, s.DB, restaurantID, date, "18:00", 4, "confirmed")

		reqBody := request.CreateReservationRequest{
			CustomerName:  "Ada Moreno",
			CustomerPhone: "555-0134",
			PartySize:     2,
			Date:          date,
			Time:          "18:30",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(reservationsURL, restaurantID), reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rejected response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rejected))
		require.False(t, rejected.Success)
		// The 18:00 parties clear at 19:30, so only later slots work.
		require.Contains(t, rejected.SuggestedTimes, "19:30")
		require.Contains(t, rejected.SuggestedTimes, "20:00")
		require.LessOrEqual(t, len(rejected.SuggestedTimes), 3)
	})

	s.Run("cancelled reservations do not count toward capacity", func() {
		t := s.T()

		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Lupa Trattoria", dbtest.DefaultSettingsJSON)
		date := nextWednesday()

		dbtest.CreateTestReservation(t, s.DB, restaurantID, date, "18:00", 4, "cancelled")
		dbtest.CreateTestReservation(t, s.DB, restaurantID, date, "18:00", 4, "no_show")

		reqBody := request.CreateReservationRequest{
			CustomerName:  "Ada Moreno",
			CustomerPhone: "555-0134",
			PartySize:     8,
			Date:          date,
			Time:          "18:00",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(reservationsURL, restaurantID), reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func (s *ReservationSuite) TestCheckAvailability() {
	s.Run("open slot reports available", func() {
		t := s.T()

		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Lupa Trattoria", dbtest.DefaultSettingsJSON)

		url := fmt.Sprintf(availabilityURL, restaurantID, nextWednesday(), "18:00", 2)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var verdict response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &verdict))
		require.True(t, verdict.Available)
	})

	s.Run("past date is never available", func() {
		t := s.T()

		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Lupa Trattoria", dbtest.DefaultSettingsJSON)

		url := fmt.Sprintf(availabilityURL, restaurantID, "2020-01-01", "18:00", 2)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var verdict response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &verdict))
		require.False(t, verdict.Available)
		require.NotEmpty(t, verdict.Reason)
	})
}

func (s *ReservationSuite) TestListReservations() {
	s.Run("staff can list a day's reservations in seating order", func() {
		t := s.T()

		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Lupa Trattoria", dbtest.DefaultSettingsJSON)
		date := nextWednesday()

		dbtest.CreateTestReservation(t, s.DB, restaurantID, date, "20:00", 2, "confirmed")
		dbtest.CreateTestReservation(t, s.DB, restaurantID, date, "18:00", 4, "confirmed")

		token := authtest.CreateAndLogin(t, s.DB, s.Router, restaurantID, "host@lupa.example", "manager")

		url := fmt.Sprintf(reservationsURL, restaurantID) + "?date=" + date
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var list []response.ReservationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list, 2)
		require.Equal(t, "18:00", list[0].Time)
		require.Equal(t, "20:00", list[1].Time)
	})

	s.Run("listing requires a token", func() {
		t := s.T()

		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Lupa Trattoria", dbtest.DefaultSettingsJSON)

		url := fmt.Sprintf(reservationsURL, restaurantID) + "?date=" + nextWednesday()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("staff of another restaurant are rejected", func() {
		t := s.T()

		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Lupa Trattoria", dbtest.DefaultSettingsJSON)
		otherID := dbtest.CreateTestRestaurant(t, s.DB, "Osteria Nettuno", dbtest.DefaultSettingsJSON)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, otherID, "host@nettuno.example", "manager")

		url := fmt.Sprintf(reservationsURL, restaurantID) + "?date=" + nextWednesday()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
