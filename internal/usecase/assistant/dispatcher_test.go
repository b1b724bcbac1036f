//go:build unit

package assistant_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tablebook/internal/domain/restaurant"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/assistant"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"
	"tablebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedModel struct {
	replies  []assistant.ModelReply
	requests []assistant.ChatRequest
}

func (m *scriptedModel) Complete(_ context.Context, req assistant.ChatRequest) (*assistant.ModelReply, error) {
	m.requests = append(m.requests, req)
	if len(m.requests) > len(m.replies) {
		last := m.replies[len(m.replies)-1]
		return &last, nil
	}
	reply := m.replies[len(m.requests)-1]
	return &reply, nil
}

type stubRestaurants struct {
	view *queries.RestaurantView
}

func (s *stubRestaurants) GetByID(_ context.Context, _ uuid.UUID) (*queries.RestaurantView, error) {
	return s.view, nil
}

type stubMenu struct {
	items []*queries.MenuItemView
	err   error
}

func (s *stubMenu) ListItems(_ context.Context, _ uuid.UUID) ([]*queries.MenuItemView, error) {
	return s.items, s.err
}

func (s *stubMenu) GetItem(_ context.Context, _ uuid.UUID, itemID uuid.UUID) (*queries.MenuItemView, error) {
	for _, item := range s.items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return nil, queries.ErrMenuItemNotFound
}

type stubAvailability struct {
	verdict *queries.Verdict
}

func (s *stubAvailability) Check(_ context.Context, _ uuid.UUID, _, _ string, _ int) (*queries.Verdict, error) {
	return s.verdict, nil
}

type stubBooking struct {
	result *commands.BookingResult
	inputs []commands.BookReservationInput
}

func (s *stubBooking) BookReservation(_ context.Context, in commands.BookReservationInput) (*commands.BookingResult, error) {
	s.inputs = append(s.inputs, in)
	return s.result, nil
}

type memConversations struct {
	id       uuid.UUID
	appended []assistant.StoredMessage
}

func (m *memConversations) EnsureConversation(_ context.Context, _ uuid.UUID, id *uuid.UUID) (uuid.UUID, error) {
	if id != nil {
		return *id, nil
	}
	return m.id, nil
}

func (m *memConversations) AppendMessage(_ context.Context, _ uuid.UUID, role, content string) error {
	m.appended = append(m.appended, assistant.StoredMessage{Role: role, Content: content})
	return nil
}

func (m *memConversations) ListRecent(_ context.Context, _ uuid.UUID, _ int) ([]assistant.StoredMessage, error) {
	return nil, nil
}

type stubUsage struct {
	count int
	err   error
}

func (s *stubUsage) CountUserMessages(_ context.Context, _ uuid.UUID, _ time.Time) (int, error) {
	return s.count, s.err
}

type fixture struct {
	model         *scriptedModel
	restaurants   *stubRestaurants
	availability  *stubAvailability
	booking       *stubBooking
	menu          *stubMenu
	conversations *memConversations
	usage         *stubUsage
	dispatcher    assistant.Dispatcher
}

func newFixture(replies ...assistant.ModelReply) *fixture {
	f := &fixture{
		model: &scriptedModel{replies: replies},
		restaurants: &stubRestaurants{
			view: builder.NewRestaurantBuilder().WithTimezone("America/New_York").BuildView(),
		},
		availability:  &stubAvailability{verdict: &queries.Verdict{Available: true}},
		booking:       &stubBooking{result: &commands.BookingResult{Success: true}},
		menu:          &stubMenu{},
		conversations: &memConversations{id: uuid.New()},
		usage:         &stubUsage{},
	}
	tools := assistant.NewToolset(f.restaurants, f.menu, f.availability, f.booking)
	f.dispatcher = assistant.NewDispatcher(
		f.model, tools, f.restaurants, f.conversations, f.usage,
		clock.NewMockClock(time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)), 1024,
	)
	return f
}

func chat(t *testing.T, f *fixture, msg string) *assistant.ChatResult {
	t.Helper()
	result, err := f.dispatcher.Handle(context.Background(), assistant.ChatInput{
		RestaurantID: f.restaurants.view.ID,
		Message:      msg,
	})
	require.NoError(t, err)
	return result
}

func toolCall(name, args string) assistant.ToolCall {
	return assistant.ToolCall{ID: "tc_" + name, Name: name, Input: json.RawMessage(args)}
}

func TestDispatcherHandle(t *testing.T) {
	t.Run("plain reply without tools", func(t *testing.T) {
		f := newFixture(assistant.ModelReply{Text: "We're open until 10pm tonight!", StopReason: "end_turn"})

		result := chat(t, f, "How late are you open?")
		assert.Equal(t, "We're open until 10pm tonight!", result.Reply)
		assert.Equal(t, f.conversations.id, result.ConversationID)
		assert.Len(t, f.model.requests, 1)

		require.Len(t, f.conversations.appended, 2)
		assert.Equal(t, assistant.RoleUser, f.conversations.appended[0].Role)
		assert.Equal(t, "How late are you open?", f.conversations.appended[0].Content)
		assert.Equal(t, assistant.RoleAssistant, f.conversations.appended[1].Role)
	})

	t.Run("system prompt carries the restaurant's identity and date", func(t *testing.T) {
		f := newFixture(assistant.ModelReply{Text: "Hi!"})

		chat(t, f, "Hello")
		require.Len(t, f.model.requests, 1)
		system := f.model.requests[0].System
		assert.Contains(t, system, "Lupa Trattoria")
		assert.Contains(t, system, "2025-06-15")
		assert.Contains(t, system, "friendly")
		assert.Len(t, f.model.requests[0].Tools, 6)
	})

	t.Run("over the monthly limit answers without touching the model", func(t *testing.T) {
		f := newFixture(assistant.ModelReply{Text: "should not be reached"})
		f.usage.count = restaurant.DefaultMonthlyMessageLimit

		result := chat(t, f, "Hi")
		assert.Contains(t, result.Reply, "call us directly")
		assert.Empty(t, f.model.requests)
		assert.Empty(t, f.conversations.appended, "gated message is not persisted")
	})

	t.Run("one under the limit still goes through", func(t *testing.T) {
		f := newFixture(assistant.ModelReply{Text: "Hello!"})
		f.usage.count = restaurant.DefaultMonthlyMessageLimit - 1

		result := chat(t, f, "Hi")
		assert.Equal(t, "Hello!", result.Reply)
		assert.Len(t, f.model.requests, 1)
	})

	t.Run("availability tool result is fed back to the model", func(t *testing.T) {
		f := newFixture(
			assistant.ModelReply{
				StopReason: "tool_use",
				ToolCalls:  []assistant.ToolCall{toolCall("check_availability", `{"date":"2025-06-20","time":"19:00","partySize":4}`)},
			},
			assistant.ModelReply{Text: "Yes, 7pm works for 4!"},
		)
		f.availability.verdict = &queries.Verdict{Available: true}

		result := chat(t, f, "Table for 4 Friday at 7?")
		assert.Equal(t, "Yes, 7pm works for 4!", result.Reply)

		require.Len(t, f.model.requests, 2)
		second := f.model.requests[1].Messages
		last := second[len(second)-1]
		require.Len(t, last.ToolResults, 1)
		assert.Equal(t, "tc_check_availability", last.ToolResults[0].ToolCallID)
		assert.False(t, last.ToolResults[0].IsError)
		assert.Contains(t, last.ToolResults[0].Content, `"available":true`)
	})

	t.Run("book_table runs the booking command with the conversation's restaurant", func(t *testing.T) {
		reservationID := uuid.New()
		f := newFixture(
			assistant.ModelReply{
				StopReason: "tool_use",
				ToolCalls: []assistant.ToolCall{toolCall("book_table",
					`{"customerName":"Ava Chen","customerPhone":"+1-555-0142","partySize":2,"date":"2025-06-20","time":"19:00"}`)},
			},
			assistant.ModelReply{Text: "You're booked for Friday at 7pm, Ava!"},
		)
		f.booking.result = &commands.BookingResult{Success: true, ReservationID: &reservationID}

		result := chat(t, f, "Book it")
		assert.Contains(t, result.Reply, "booked")

		require.Len(t, f.booking.inputs, 1)
		booked := f.booking.inputs[0]
		assert.Equal(t, f.restaurants.view.ID, booked.RestaurantID)
		assert.Equal(t, "Ava Chen", booked.CustomerName)
		assert.Equal(t, 2, booked.PartySize)
	})

	t.Run("failed tool becomes an is_error result the model can recover from", func(t *testing.T) {
		f := newFixture(
			assistant.ModelReply{
				StopReason: "tool_use",
				ToolCalls:  []assistant.ToolCall{toolCall("get_menu_items", `{}`)},
			},
			assistant.ModelReply{Text: "Sorry, I can't pull up the menu right now."},
		)
		f.menu.err = errs.New("connection refused")

		result := chat(t, f, "What's on the menu?")
		assert.Contains(t, result.Reply, "Sorry")

		last := f.model.requests[1].Messages
		toolTurn := last[len(last)-1]
		require.Len(t, toolTurn.ToolResults, 1)
		assert.True(t, toolTurn.ToolResults[0].IsError)
	})

	t.Run("sibling tool calls keep request order", func(t *testing.T) {
		f := newFixture(
			assistant.ModelReply{
				StopReason: "tool_use",
				ToolCalls: []assistant.ToolCall{
					toolCall("get_restaurant_info", `{}`),
					toolCall("get_menu_items", `{}`),
				},
			},
			assistant.ModelReply{Text: "Here's what I found."},
		)

		chat(t, f, "Tell me about the place and the menu")
		last := f.model.requests[1].Messages
		toolTurn := last[len(last)-1]
		require.Len(t, toolTurn.ToolResults, 2)
		assert.Equal(t, "tc_get_restaurant_info", toolTurn.ToolResults[0].ToolCallID)
		assert.Equal(t, "tc_get_menu_items", toolTurn.ToolResults[1].ToolCallID)
	})

	t.Run("runaway tool loop terminates with a fallback", func(t *testing.T) {
		f := newFixture(assistant.ModelReply{
			StopReason: "tool_use",
			ToolCalls:  []assistant.ToolCall{toolCall("get_restaurant_info", `{}`)},
		})

		result := chat(t, f, "Loop forever")
		assert.Contains(t, result.Reply, "call the restaurant")
		assert.Len(t, f.model.requests, 8)
	})
}
