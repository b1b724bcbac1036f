package commands

import (
	"context"
	"strings"

	"tablebook/internal/pkg/errs"
	"tablebook/internal/pkg/jwt"
	"tablebook/internal/pkg/password"

	"tablebook/internal/domain/staff"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrAccountInactive    = errs.New("account inactive")
	ErrAccountNotFound    = errs.New("account not found")
)

type LoginResult struct {
	Token        string    `json:"token"`
	AccountID    uuid.UUID `json:"accountId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (*AccountSnapshot, error)
}

type authCommandsImpl struct {
	accounts   AccountReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(accounts AccountReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		accounts:   accounts,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	account, err := a.accounts.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		// Same answer for unknown account and wrong password.
		return nil, ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, ErrAccountInactive
	}

	if err := password.ComparePassword(account.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := staff.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(account.ID, account.RestaurantID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	return &LoginResult{
		Token:        token,
		AccountID:    account.ID,
		RestaurantID: account.RestaurantID,
		Email:        account.Email,
		Role:         account.Role,
	}, nil
}

func (a *authCommandsImpl) GetAccount(ctx context.Context, accountID uuid.UUID) (*AccountSnapshot, error) {
	account, err := a.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, errs.Mark(err, ErrAccountNotFound)
	}
	return account, nil
}
