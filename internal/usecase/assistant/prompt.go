package assistant

import (
	"fmt"
	"strings"

	"tablebook/internal/usecase/queries"
)

// buildSystemPrompt composes the per-restaurant system prompt from the
// resolved assistant settings. Tool usage rules live here rather than in the
// tool descriptions so the model sees them on every turn.
func buildSystemPrompt(rest *queries.RestaurantView, today string) string {
	a := rest.Settings.Assistant

	var b strings.Builder
	fmt.Fprintf(&b, "You are the %s virtual host for %s, a restaurant.\n", a.Personality, rest.Name)
	fmt.Fprintf(&b, "Today's date is %s. The restaurant's timezone is %s.\n", today, rest.Timezone)
	b.WriteString("\nYou help customers with questions about the menu, opening hours, and the restaurant, and you can check availability and book tables.\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Always check availability before booking a table.\n")
	b.WriteString("- Collect the customer's name and phone number before calling book_table.\n")
	b.WriteString("- When a requested time is unavailable, offer the suggested alternatives.\n")
	b.WriteString("- Answer only from tool results; never invent menu items, prices, or hours.\n")
	b.WriteString("- Keep replies short and conversational.\n")

	if len(a.Capabilities) > 0 {
		fmt.Fprintf(&b, "\nEnabled capabilities: %s.\n", strings.Join(a.Capabilities, ", "))
	}
	if a.CustomInstructions != "" {
		fmt.Fprintf(&b, "\nAdditional instructions from the restaurant:\n%s\n", a.CustomInstructions)
	}
	return b.String()
}
