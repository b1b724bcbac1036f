package usecase

import (
	"tablebook/internal/domain/staff"
	"tablebook/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (accountID, restaurantID uuid.UUID, role staff.Role, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, uuid.UUID, staff.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", err
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", err
	}

	return claims.AccountID, claims.RestaurantID, role, nil
}
