package request

import (
	"strings"

	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerPhone string             `json:"customer_phone" binding:"required"`
	CustomerEmail *string            `json:"customer_email,omitempty"`
	Items         []OrderItemRequest `json:"items" binding:"required,dive"`
}

// OrderItemRequest deliberately has no price field; pricing is always
// recomputed from the stored menu.
type OrderItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required"`
	Note       *string   `json:"note,omitempty"`
}

func (r CreateOrderRequest) ToInput(restaurantID uuid.UUID) commands.CreateOrderInput {
	items := make([]commands.OrderItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, commands.OrderItemInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Note:       trimmedPtr(item.Note),
		})
	}
	return commands.CreateOrderInput{
		RestaurantID:  restaurantID,
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		CustomerEmail: trimmedPtr(r.CustomerEmail),
		Items:         items,
	}
}
