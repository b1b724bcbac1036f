package request

import "github.com/google/uuid"

type ChatRequest struct {
	Message        string     `json:"message" binding:"required"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
}
