package response

import (
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderResponse struct {
	OrderID       uuid.UUID `json:"orderId"`
	SubtotalCents int64     `json:"subtotalCents"`
	TaxCents      int64     `json:"taxCents"`
	TotalCents    int64     `json:"totalCents"`
	CheckoutURL   string    `json:"checkoutUrl"`
}

func FromOrderResult(r *commands.CreateOrderResult) *OrderResponse {
	return &OrderResponse{
		OrderID:       r.OrderID,
		SubtotalCents: r.SubtotalCents,
		TaxCents:      r.TaxCents,
		TotalCents:    r.TotalCents,
		CheckoutURL:   r.CheckoutURL,
	}
}
