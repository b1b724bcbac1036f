package assistant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is one turn of a model conversation. A turn carries either plain
// text, the model's tool calls, or the results we feed back for them.
type Message struct {
	Role        string
	Text        string
	ToolCalls   []ToolCall
	ToolResults []ToolResult
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ToolCall struct {
	ID    string
	Name  string
	Input json.RawMessage
}

type ToolResult struct {
	ToolCallID string
	Content    string
	IsError    bool
}

type ToolDef struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

type ChatRequest struct {
	System    string
	Messages  []Message
	Tools     []ToolDef
	MaxTokens int
}

type ModelReply struct {
	Text       string
	ToolCalls  []ToolCall
	StopReason string
}

// ChatModel is the outbound port to the language-model provider.
type ChatModel interface {
	Complete(ctx context.Context, req ChatRequest) (*ModelReply, error)
}

// StoredMessage is a persisted conversation turn; tool traffic is not
// persisted, only the text the customer saw.
type StoredMessage struct {
	Role      string
	Content   string
	CreatedAt time.Time
}

type ConversationRepository interface {
	// EnsureConversation returns the existing conversation when id is set
	// and owned by the restaurant, or creates a fresh one.
	EnsureConversation(ctx context.Context, restaurantID uuid.UUID, id *uuid.UUID) (uuid.UUID, error)
	AppendMessage(ctx context.Context, conversationID uuid.UUID, role, content string) error
	ListRecent(ctx context.Context, conversationID uuid.UUID, limit int) ([]StoredMessage, error)
}

type UsageReadStore interface {
	// CountUserMessages counts customer messages for the restaurant since
	// the given instant (the start of the current calendar month).
	CountUserMessages(ctx context.Context, restaurantID uuid.UUID, since time.Time) (int, error)
}
