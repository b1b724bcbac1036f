package response

import (
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token        string    `json:"token"`
	AccountID    uuid.UUID `json:"accountId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:        r.Token,
		AccountID:    r.AccountID,
		RestaurantID: r.RestaurantID,
		Email:        r.Email,
		Role:         r.Role,
	}
}

type MeResponse struct {
	AccountID    uuid.UUID `json:"accountId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
}
