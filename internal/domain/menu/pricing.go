package menu

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

const (
	MinQuantity = 1
	MaxQuantity = 99

	// taxRate is the fixed sales tax applied to every order: 8.75%.
	taxRate = 0.0875
)

var (
	ErrNoItems         = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("quantity out of range")
	ErrUnknownItem     = errors.New("unknown menu item")
	ErrItemUnavailable = errors.New("menu item unavailable")
)

// Line is a requested order line. It carries no price on purpose.
type Line struct {
	ItemID   uuid.UUID
	Quantity int
	Note     *string
}

type PricedLine struct {
	ItemID         uuid.UUID
	Name           string
	Quantity       int
	UnitPriceCents int64
	TotalCents     int64
	Note           *string
}

type OrderPricing struct {
	Lines         []PricedLine
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
}

// PriceOrder revalidates every line against the live menu and recomputes all
// totals from stored prices. An unknown or unavailable item rejects the whole
// order, naming the offender.
func PriceOrder(lines []Line, items map[uuid.UUID]*Item) (*OrderPricing, error) {
	if len(lines) == 0 {
		return nil, ErrNoItems
	}

	pricing := &OrderPricing{Lines: make([]PricedLine, 0, len(lines))}
	for _, line := range lines {
		if line.Quantity < MinQuantity || line.Quantity > MaxQuantity {
			return nil, fmt.Errorf("quantity %d for item %s: %w", line.Quantity, line.ItemID, ErrInvalidQuantity)
		}

		item, ok := items[line.ItemID]
		if !ok {
			return nil, fmt.Errorf("item %s: %w", line.ItemID, ErrUnknownItem)
		}
		if !item.Available() {
			return nil, fmt.Errorf("%q is currently unavailable: %w", item.Name(), ErrItemUnavailable)
		}

		total := item.PriceCents() * int64(line.Quantity)
		pricing.Lines = append(pricing.Lines, PricedLine{
			ItemID:         item.ID(),
			Name:           item.Name(),
			Quantity:       line.Quantity,
			UnitPriceCents: item.PriceCents(),
			TotalCents:     total,
			Note:           line.Note,
		})
		pricing.SubtotalCents += total
	}

	pricing.TaxCents = roundCents(float64(pricing.SubtotalCents) * taxRate)
	pricing.TotalCents = pricing.SubtotalCents + pricing.TaxCents
	return pricing, nil
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
