package staff

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyEmail      = errors.New("email cannot be empty")
	ErrInactiveAccount = errors.New("account is inactive")
)

// Account is a dashboard login for a restaurant owner or manager.
type Account struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	email        string
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
}

func NewAccount(id, restaurantID uuid.UUID, email, passwordHash string, role Role, isActive bool, createdAt time.Time) (*Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Account{
		id:           id,
		restaurantID: restaurantID,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
	}, nil
}

func (a *Account) ID() uuid.UUID           { return a.id }
func (a *Account) RestaurantID() uuid.UUID { return a.restaurantID }
func (a *Account) Email() string           { return a.email }
func (a *Account) PasswordHash() string    { return a.passwordHash }
func (a *Account) Role() Role              { return a.role }
func (a *Account) IsActive() bool          { return a.isActive }
func (a *Account) CreatedAt() time.Time    { return a.createdAt }

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleManager:
		return true
	default:
		return false
	}
}
