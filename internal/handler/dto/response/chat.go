package response

import (
	"tablebook/internal/usecase/assistant"

	"github.com/google/uuid"
)

type ChatResponse struct {
	ConversationID uuid.UUID `json:"conversationId"`
	Reply          string    `json:"reply"`
}

func FromChatResult(r *assistant.ChatResult) *ChatResponse {
	return &ChatResponse{
		ConversationID: r.ConversationID,
		Reply:          r.Reply,
	}
}
