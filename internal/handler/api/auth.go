package api

import (
	"errors"
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth commands.AuthCommands
}

func NewAuthHandler(auth commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

// @Summary Staff login
// @Description Authenticate a staff member and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrAccountInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is deactivated",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Current account
// @Description Return the authenticated staff member
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	account, err := h.auth.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Account not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.MeResponse{
		AccountID:    account.ID,
		RestaurantID: account.RestaurantID,
		Email:        account.Email,
		Role:         account.Role,
	})
}
