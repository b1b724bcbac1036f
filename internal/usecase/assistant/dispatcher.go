package assistant

import (
	"context"
	"log/slog"
	"time"

	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// maxToolRounds bounds the model/tool loop for a single customer message. A
// model that keeps requesting tools past this gets cut off with a fallback
// reply instead of holding the request open.
const maxToolRounds = 8

const (
	// historyLimit caps how many stored turns are replayed to the model.
	historyLimit = 30

	overLimitMessage = "Our chat assistant is taking a break this month. Please call us directly and we'll be happy to help!"
	fallbackMessage  = "I'm having trouble completing that right now. Please call the restaurant and our staff will help you directly."
)

var ErrAssistantUnavailable = errs.New("assistant unavailable")

type ChatInput struct {
	RestaurantID   uuid.UUID
	ConversationID *uuid.UUID
	Message        string
}

type ChatResult struct {
	ConversationID uuid.UUID `json:"conversationId"`
	Reply          string    `json:"reply"`
}

type Dispatcher interface {
	Handle(ctx context.Context, in ChatInput) (*ChatResult, error)
}

type dispatcherImpl struct {
	model         ChatModel
	tools         *Toolset
	restaurants   queries.RestaurantQueries
	conversations ConversationRepository
	usage         UsageReadStore
	clock         clock.Clock
	maxTokens     int
}

func NewDispatcher(
	model ChatModel,
	tools *Toolset,
	restaurants queries.RestaurantQueries,
	conversations ConversationRepository,
	usage UsageReadStore,
	clk clock.Clock,
	maxTokens int,
) Dispatcher {
	return &dispatcherImpl{
		model:         model,
		tools:         tools,
		restaurants:   restaurants,
		conversations: conversations,
		usage:         usage,
		clock:         clk,
		maxTokens:     maxTokens,
	}
}

// Handle runs one customer message through the model/tool loop and returns
// the assistant's reply. The monthly usage gate is checked before anything
// touches the model; an over-limit restaurant gets a fixed reply and no
// model call.
func (d *dispatcherImpl) Handle(ctx context.Context, in ChatInput) (*ChatResult, error) {
	rest, err := d.restaurants.GetByID(ctx, in.RestaurantID)
	if err != nil {
		return nil, errs.Mark(err, ErrAssistantUnavailable)
	}

	convID, err := d.conversations.EnsureConversation(ctx, in.RestaurantID, in.ConversationID)
	if err != nil {
		return nil, errs.Mark(err, ErrAssistantUnavailable)
	}

	over, err := d.overMonthlyLimit(ctx, in.RestaurantID, rest.Settings.Assistant.MonthlyMessageLimit)
	if err != nil {
		return nil, errs.Mark(err, ErrAssistantUnavailable)
	}
	if over {
		return &ChatResult{ConversationID: convID, Reply: overLimitMessage}, nil
	}

	history, err := d.conversations.ListRecent(ctx, convID, historyLimit)
	if err != nil {
		return nil, errs.Mark(err, ErrAssistantUnavailable)
	}

	if err := d.conversations.AppendMessage(ctx, convID, RoleUser, in.Message); err != nil {
		return nil, errs.Mark(err, ErrAssistantUnavailable)
	}

	messages := make([]Message, 0, len(history)+1)
	for _, m := range history {
		messages = append(messages, Message{Role: m.Role, Text: m.Content})
	}
	messages = append(messages, Message{Role: RoleUser, Text: in.Message})

	now := d.clock.Now().In(rest.Location())
	system := buildSystemPrompt(rest, now.Format("2006-01-02"))

	reply, err := d.runToolLoop(ctx, in.RestaurantID, system, messages)
	if err != nil {
		return nil, err
	}

	if err := d.conversations.AppendMessage(ctx, convID, RoleAssistant, reply); err != nil {
		slog.Warn("failed to persist assistant reply", "conversation_id", convID, "error", err.Error())
	}

	return &ChatResult{ConversationID: convID, Reply: reply}, nil
}

func (d *dispatcherImpl) runToolLoop(ctx context.Context, restaurantID uuid.UUID, system string, messages []Message) (string, error) {
	defs := d.tools.Defs()

	for round := 0; round < maxToolRounds; round++ {
		reply, err := d.model.Complete(ctx, ChatRequest{
			System:    system,
			Messages:  messages,
			Tools:     defs,
			MaxTokens: d.maxTokens,
		})
		if err != nil {
			return "", errs.Mark(err, ErrAssistantUnavailable)
		}

		if len(reply.ToolCalls) == 0 {
			return reply.Text, nil
		}

		results := d.executeToolCalls(ctx, restaurantID, reply.ToolCalls)
		messages = append(messages,
			Message{Role: RoleAssistant, Text: reply.Text, ToolCalls: reply.ToolCalls},
			Message{Role: RoleUser, ToolResults: results},
		)
	}

	slog.Warn("tool loop exhausted without a final reply", "restaurant_id", restaurantID, "rounds", maxToolRounds)
	return fallbackMessage, nil
}

// executeToolCalls runs sibling calls from one model turn concurrently and
// joins the results back in request order. A failed tool becomes an is_error
// result so the model can recover in its next turn.
func (d *dispatcherImpl) executeToolCalls(ctx context.Context, restaurantID uuid.UUID, calls []ToolCall) []ToolResult {
	results := make([]ToolResult, len(calls))
	g, gctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		g.Go(func() error {
			content, err := d.tools.Invoke(gctx, restaurantID, call)
			if err != nil {
				slog.Warn("tool call failed",
					"restaurant_id", restaurantID, "tool", call.Name, "error", err.Error())
				results[i] = ToolResult{ToolCallID: call.ID, Content: err.Error(), IsError: true}
				return nil
			}
			results[i] = ToolResult{ToolCallID: call.ID, Content: content}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (d *dispatcherImpl) overMonthlyLimit(ctx context.Context, restaurantID uuid.UUID, limit int) (bool, error) {
	now := d.clock.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	count, err := d.usage.CountUserMessages(ctx, restaurantID, monthStart)
	if err != nil {
		return false, err
	}
	return count >= limit, nil
}
