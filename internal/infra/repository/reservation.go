package repository

import (
	"context"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (
			id, restaurant_id, customer_name, customer_phone, customer_email,
			party_size, date, time, duration_min, status, source,
			special_requests, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.pool.Exec(ctx, query,
		res.ID(), res.RestaurantID(), res.CustomerName(), res.CustomerPhone(),
		res.CustomerEmail(), res.PartySize(), res.Date(), res.Time(),
		res.DurationMin(), string(res.Status()), string(res.Source()),
		res.SpecialRequests(), res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("restaurant does not exist", err, infra.KindForeignKeyViolated)
		}
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation", err)
	}

	return res.ID(), nil
}
