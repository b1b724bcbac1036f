package readstore

import (
	"context"
	"time"

	"tablebook/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UsageReadStore struct {
	pool *pgxpool.Pool
}

func NewUsageReadStore(pool *pgxpool.Pool) *UsageReadStore {
	return &UsageReadStore{pool: pool}
}

// CountUserMessages counts customer messages across all of a restaurant's
// conversations since the given instant. The monthly gate reads this.
func (u *UsageReadStore) CountUserMessages(ctx context.Context, restaurantID uuid.UUID, since time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM messages m
		JOIN conversations c ON c.id = m.conversation_id
		WHERE c.restaurant_id = $1
		  AND m.role = 'user'
		  AND m.created_at >= $2`

	var count int
	if err := u.pool.QueryRow(ctx, query, restaurantID, since).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count user messages", err)
	}
	return count, nil
}
