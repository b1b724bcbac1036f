package repository

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/assistant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ConversationRepository struct {
	pool *pgxpool.Pool
}

func NewConversationRepository(pool *pgxpool.Pool) *ConversationRepository {
	return &ConversationRepository{pool: pool}
}

// EnsureConversation resolves the conversation a chat turn belongs to. A
// stale or foreign conversation id silently starts a new conversation
// instead of failing the chat.
func (c *ConversationRepository) EnsureConversation(ctx context.Context, restaurantID uuid.UUID, id *uuid.UUID) (uuid.UUID, error) {
	if id != nil {
		var found uuid.UUID
		err := c.pool.QueryRow(ctx,
			`SELECT id FROM conversations WHERE id = $1 AND restaurant_id = $2`,
			*id, restaurantID,
		).Scan(&found)
		if err == nil {
			return found, nil
		}
		if !pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("failed to look up conversation", err)
		}
	}

	newID := uuid.New()
	_, err := c.pool.Exec(ctx,
		`INSERT INTO conversations (id, restaurant_id, created_at) VALUES ($1, $2, now())`,
		newID, restaurantID,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create conversation", err)
	}
	return newID, nil
}

func (c *ConversationRepository) AppendMessage(ctx context.Context, conversationID uuid.UUID, role, content string) error {
	_, err := c.pool.Exec(ctx,
		`INSERT INTO messages (id, conversation_id, role, content, created_at) VALUES ($1, $2, $3, $4, now())`,
		uuid.New(), conversationID, role, content,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append message", err)
	}
	return nil
}

// ListRecent returns the newest turns in chronological order.
func (c *ConversationRepository) ListRecent(ctx context.Context, conversationID uuid.UUID, limit int) ([]assistant.StoredMessage, error) {
	const query = `
		SELECT role, content, created_at FROM (
			SELECT role, content, created_at
			FROM messages
			WHERE conversation_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC`

	rows, err := c.pool.Query(ctx, query, conversationID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query conversation history", err)
	}
	defer rows.Close()

	var result []assistant.StoredMessage
	for rows.Next() {
		var m assistant.StoredMessage
		if err := rows.Scan(&m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conversation message", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read conversation history", err)
	}

	return result, nil
}
