package response

import (
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MenuItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	PriceCents  int64     `json:"priceCents"`
	Available   bool      `json:"available"`
}

type MenuResponse struct {
	Items []MenuItemResponse `json:"items"`
}

func FromMenuItems(items []*queries.MenuItemView) (*MenuResponse, error) {
	resp := &MenuResponse{Items: make([]MenuItemResponse, 0, len(items))}
	if err := copier.Copy(&resp.Items, items); err != nil {
		return nil, err
	}
	return resp, nil
}
