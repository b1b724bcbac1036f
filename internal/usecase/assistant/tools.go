package assistant

import (
	"context"
	"encoding/json"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/schedule"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

// Toolset exposes the customer-facing operations to the model. Every tool is
// scoped to the restaurant the conversation belongs to; the model never sees
// or supplies a restaurant id.
type Toolset struct {
	restaurants  queries.RestaurantQueries
	menu         queries.MenuQueries
	availability queries.AvailabilityQueries
	booking      commands.BookingCommands
}

func NewToolset(
	restaurants queries.RestaurantQueries,
	menu queries.MenuQueries,
	availability queries.AvailabilityQueries,
	booking commands.BookingCommands,
) *Toolset {
	return &Toolset{
		restaurants:  restaurants,
		menu:         menu,
		availability: availability,
		booking:      booking,
	}
}

func schema(s string) json.RawMessage { return json.RawMessage(s) }

func (t *Toolset) Defs() []ToolDef {
	return []ToolDef{
		{
			Name:        "get_menu_items",
			Description: "List the restaurant's menu items, optionally filtered by category.",
			InputSchema: schema(`{"type":"object","properties":{"category":{"type":"string","description":"Optional category filter, e.g. starters, mains, desserts."}}}`),
		},
		{
			Name:        "get_menu_item_details",
			Description: "Get the full details of a single menu item by its id.",
			InputSchema: schema(`{"type":"object","properties":{"itemId":{"type":"string","description":"Menu item id from get_menu_items."}},"required":["itemId"]}`),
		},
		{
			Name:        "check_opening_hours",
			Description: "Check whether the restaurant is open and seating at a given date and time.",
			InputSchema: schema(`{"type":"object","properties":{"date":{"type":"string","description":"Date in YYYY-MM-DD format."},"time":{"type":"string","description":"Time in HH:mm 24-hour format."}},"required":["date","time"]}`),
		},
		{
			Name:        "get_restaurant_info",
			Description: "Get the restaurant's name, address, phone number and weekly opening hours.",
			InputSchema: schema(`{"type":"object","properties":{}}`),
		},
		{
			Name:        "check_availability",
			Description: "Check whether a table is available for a party at a given date and time. Returns alternative times when it is not.",
			InputSchema: schema(`{"type":"object","properties":{"date":{"type":"string","description":"Date in YYYY-MM-DD format."},"time":{"type":"string","description":"Time in HH:mm 24-hour format."},"partySize":{"type":"integer","description":"Number of guests."}},"required":["date","time","partySize"]}`),
		},
		{
			Name:        "book_table",
			Description: "Book a table. Only call after check_availability confirmed the slot and the customer provided their name and phone number.",
			InputSchema: schema(`{"type":"object","properties":{"customerName":{"type":"string"},"customerPhone":{"type":"string"},"customerEmail":{"type":"string"},"partySize":{"type":"integer"},"date":{"type":"string","description":"YYYY-MM-DD"},"time":{"type":"string","description":"HH:mm"},"specialRequests":{"type":"string"}},"required":["customerName","customerPhone","partySize","date","time"]}`),
		},
	}
}

// Invoke runs one tool call and returns its result serialized as JSON. An
// error return becomes an is_error tool result for the model to recover
// from, never a failed request.
func (t *Toolset) Invoke(ctx context.Context, restaurantID uuid.UUID, call ToolCall) (string, error) {
	switch call.Name {
	case "get_menu_items":
		return t.getMenuItems(ctx, restaurantID, call.Input)
	case "get_menu_item_details":
		return t.getMenuItemDetails(ctx, restaurantID, call.Input)
	case "check_opening_hours":
		return t.checkOpeningHours(ctx, restaurantID, call.Input)
	case "get_restaurant_info":
		return t.getRestaurantInfo(ctx, restaurantID)
	case "check_availability":
		return t.checkAvailability(ctx, restaurantID, call.Input)
	case "book_table":
		return t.bookTable(ctx, restaurantID, call.Input)
	default:
		return "", errs.New("unknown tool: " + call.Name)
	}
}

func (t *Toolset) getMenuItems(ctx context.Context, restaurantID uuid.UUID, input json.RawMessage) (string, error) {
	var args struct {
		Category string `json:"category"`
	}
	if err := unmarshalArgs(input, &args); err != nil {
		return "", err
	}

	items, err := t.menu.ListItems(ctx, restaurantID)
	if err != nil {
		return "", err
	}
	if args.Category != "" {
		filtered := items[:0:0]
		for _, item := range items {
			if item.Category == args.Category {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	return marshalResult(map[string]any{"items": items})
}

func (t *Toolset) getMenuItemDetails(ctx context.Context, restaurantID uuid.UUID, input json.RawMessage) (string, error) {
	var args struct {
		ItemID uuid.UUID `json:"itemId"`
	}
	if err := unmarshalArgs(input, &args); err != nil {
		return "", err
	}

	item, err := t.menu.GetItem(ctx, restaurantID, args.ItemID)
	if err != nil {
		return "", err
	}
	return marshalResult(item)
}

func (t *Toolset) checkOpeningHours(ctx context.Context, restaurantID uuid.UUID, input json.RawMessage) (string, error) {
	var args struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := unmarshalArgs(input, &args); err != nil {
		return "", err
	}

	rest, err := t.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return "", err
	}
	localDate, err := schedule.ParseDate(args.Date, rest.Location())
	if err != nil {
		return "", err
	}
	result := rest.Settings.Capacity.OperatingHours.Check(localDate, args.Time)
	return marshalResult(result)
}

func (t *Toolset) getRestaurantInfo(ctx context.Context, restaurantID uuid.UUID) (string, error) {
	rest, err := t.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return "", err
	}
	return marshalResult(map[string]any{
		"name":           rest.Name,
		"address":        rest.Address,
		"phone":          rest.Phone,
		"timezone":       rest.Timezone,
		"operatingHours": rest.Settings.Capacity.OperatingHours,
	})
}

func (t *Toolset) checkAvailability(ctx context.Context, restaurantID uuid.UUID, input json.RawMessage) (string, error) {
	var args struct {
		Date      string `json:"date"`
		Time      string `json:"time"`
		PartySize int    `json:"partySize"`
	}
	if err := unmarshalArgs(input, &args); err != nil {
		return "", err
	}

	verdict, err := t.availability.Check(ctx, restaurantID, args.Date, args.Time, args.PartySize)
	if err != nil {
		return "", err
	}
	return marshalResult(verdict)
}

func (t *Toolset) bookTable(ctx context.Context, restaurantID uuid.UUID, input json.RawMessage) (string, error) {
	var args struct {
		CustomerName    string  `json:"customerName"`
		CustomerPhone   string  `json:"customerPhone"`
		CustomerEmail   *string `json:"customerEmail"`
		PartySize       int     `json:"partySize"`
		Date            string  `json:"date"`
		Time            string  `json:"time"`
		SpecialRequests *string `json:"specialRequests"`
	}
	if err := unmarshalArgs(input, &args); err != nil {
		return "", err
	}

	result, err := t.booking.BookReservation(ctx, commands.BookReservationInput{
		RestaurantID:    restaurantID,
		CustomerName:    args.CustomerName,
		CustomerPhone:   args.CustomerPhone,
		CustomerEmail:   args.CustomerEmail,
		PartySize:       args.PartySize,
		Date:            args.Date,
		Time:            args.Time,
		SpecialRequests: args.SpecialRequests,
		Source:          reservation.SourceChat,
	})
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

func unmarshalArgs(input json.RawMessage, dst any) error {
	if len(input) == 0 {
		return nil
	}
	if err := json.Unmarshal(input, dst); err != nil {
		return errs.Wrap(err, "invalid tool arguments")
	}
	return nil
}

func marshalResult(v any) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode tool result")
	}
	return string(out), nil
}
