//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"tablebook/internal/handler/dto/request"
	"tablebook/internal/handler/dto/response"
	"tablebook/tests/common/dbtest"
	"tablebook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginStaff(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login response.LoginResponse
	err := httptest.DecodeResponseBody(t, w.Body, &login)
	require.NoError(t, err)
	require.NotEmpty(t, login.Token, "login response is missing a token")

	return login.Token
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, restaurantID uuid.UUID, email, role string) string {
	t.Helper()
	dbtest.CreateTestStaff(t, db, restaurantID, email, role)
	return LoginStaff(t, router, email, "password123")
}
