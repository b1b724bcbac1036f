package commands

import (
	"context"
	"time"

	"tablebook/internal/domain/reservation"

	"github.com/google/uuid"
)

// Write-side ports. Snapshots keep the write side independent of the
// read-side query types.

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
}

// OrderSnapshot is everything the order write needs; all money values were
// recomputed server-side before this struct exists.
type OrderSnapshot struct {
	ID            uuid.UUID
	RestaurantID  uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Lines         []OrderLineSnapshot
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
	Status        string
}

type OrderLineSnapshot struct {
	MenuItemID     uuid.UUID
	Name           string
	Quantity       int
	UnitPriceCents int64
	TotalCents     int64
	Note           *string
}

type OrderRepository interface {
	Create(ctx context.Context, order *OrderSnapshot) (uuid.UUID, error)
	// Delete is the compensating action when checkout-session creation
	// fails after a successful insert.
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

// AccountSnapshot is the write-side view of a dashboard login.
type AccountSnapshot struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type AccountReadStore interface {
	FindByEmail(ctx context.Context, email string) (*AccountSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AccountSnapshot, error)
}

// CheckoutSessionInput is the narrow contract with the billing collaborator:
// id, amount and metadata only.
type CheckoutSessionInput struct {
	OrderID      uuid.UUID
	RestaurantID uuid.UUID
	AmountCents  int64
	Currency     string
	Metadata     map[string]string
}

type CheckoutSession struct {
	SessionID string
	URL       string
}

type CheckoutProvider interface {
	CreateSession(ctx context.Context, in CheckoutSessionInput) (*CheckoutSession, error)
}
