package repository

import (
	"context"
	"time"

	"tablebook/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository is the write side of the email/SMS outbox; a
// separate worker drains notification_jobs.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (n *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at, created_at)
		VALUES ($1, $2, $3, $4, 'pending', $5, now())`

	if _, err := n.pool.Exec(ctx, query, uuid.New(), kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
