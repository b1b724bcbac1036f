package commands

import (
	"context"
	"errors"
	"log/slog"

	"tablebook/internal/domain/menu"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderValidation = errs.New("order validation failed")
	ErrCheckoutFailed  = errs.New("checkout session creation failed")
)

type OrderItemInput struct {
	MenuItemID uuid.UUID
	Quantity   int
	Note       *string
}

type CreateOrderInput struct {
	RestaurantID  uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Items         []OrderItemInput
}

type CreateOrderResult struct {
	OrderID       uuid.UUID `json:"orderId"`
	SubtotalCents int64     `json:"subtotalCents"`
	TaxCents      int64     `json:"taxCents"`
	TotalCents    int64     `json:"totalCents"`
	CheckoutURL   string    `json:"checkoutUrl"`
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderResult, error)
}

type OrderMenuReadStore interface {
	FindItems(ctx context.Context, restaurantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*menu.Item, error)
}

type orderCommandsImpl struct {
	menuItems OrderMenuReadStore
	orders    OrderRepository
	checkout  CheckoutProvider
}

func NewOrderCommands(menuItems OrderMenuReadStore, orders OrderRepository, checkout CheckoutProvider) OrderCommands {
	return &orderCommandsImpl{
		menuItems: menuItems,
		orders:    orders,
		checkout:  checkout,
	}
}

// CreateOrder prices every line from the live menu; whatever prices or
// totals the client sent never reach this point. When checkout-session
// creation fails after the insert, the order row is deleted again: a
// compensating action, not a transaction.
func (o *orderCommandsImpl) CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderResult, error) {
	lines := make([]menu.Line, 0, len(in.Items))
	ids := make([]uuid.UUID, 0, len(in.Items))
	for _, item := range in.Items {
		lines = append(lines, menu.Line{ItemID: item.MenuItemID, Quantity: item.Quantity, Note: item.Note})
		ids = append(ids, item.MenuItemID)
	}
	if len(lines) == 0 {
		return nil, errs.Mark(menu.ErrNoItems, ErrOrderValidation)
	}

	items, err := o.menuItems.FindItems(ctx, in.RestaurantID, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	pricing, err := menu.PriceOrder(lines, items)
	if err != nil {
		return nil, errs.Mark(err, ErrOrderValidation)
	}

	snapshot := toOrderSnapshot(in, pricing)
	orderID, err := o.orders.Create(ctx, snapshot)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	session, err := o.checkout.CreateSession(ctx, CheckoutSessionInput{
		OrderID:      orderID,
		RestaurantID: in.RestaurantID,
		AmountCents:  pricing.TotalCents,
		Currency:     "usd",
		Metadata: map[string]string{
			"order_id":      orderID.String(),
			"restaurant_id": in.RestaurantID.String(),
		},
	})
	if err != nil {
		if delErr := o.orders.Delete(ctx, orderID); delErr != nil {
			slog.Error("compensating order delete failed; row is orphaned",
				"order_id", orderID, "error", delErr.Error())
		}
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	return &CreateOrderResult{
		OrderID:       orderID,
		SubtotalCents: pricing.SubtotalCents,
		TaxCents:      pricing.TaxCents,
		TotalCents:    pricing.TotalCents,
		CheckoutURL:   session.URL,
	}, nil
}

func toOrderSnapshot(in CreateOrderInput, pricing *menu.OrderPricing) *OrderSnapshot {
	snapshot := &OrderSnapshot{
		ID:            uuid.New(),
		RestaurantID:  in.RestaurantID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		SubtotalCents: pricing.SubtotalCents,
		TaxCents:      pricing.TaxCents,
		TotalCents:    pricing.TotalCents,
		Status:        "pending_payment",
	}
	for _, line := range pricing.Lines {
		snapshot.Lines = append(snapshot.Lines, OrderLineSnapshot{
			MenuItemID:     line.ItemID,
			Name:           line.Name,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			TotalCents:     line.TotalCents,
			Note:           line.Note,
		})
	}
	return snapshot
}

// IsValidationError reports whether err is a rejected-order condition rather
// than an infrastructure failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrOrderValidation)
}
