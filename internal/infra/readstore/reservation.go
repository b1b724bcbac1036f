package readstore

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

// ActiveByDate projects only what capacity math needs; cancelled and
// completed reservations do not hold seats.
func (r *ReservationReadStore) ActiveByDate(ctx context.Context, restaurantID uuid.UUID, date string) ([]queries.ActiveReservation, error) {
	const query = `
		SELECT time, duration_min, party_size
		FROM reservations
		WHERE restaurant_id = $1
		  AND date = $2
		  AND status IN ('pending', 'confirmed', 'seated')`

	rows, err := r.pool.Query(ctx, query, restaurantID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active reservations", err)
	}
	defer rows.Close()

	var result []queries.ActiveReservation
	for rows.Next() {
		var res queries.ActiveReservation
		if err := rows.Scan(&res.Time, &res.DurationMin, &res.PartySize); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active reservation", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read active reservations", err)
	}

	return result, nil
}

func (r *ReservationReadStore) ListByDate(ctx context.Context, restaurantID uuid.UUID, date string) ([]*queries.ReservationListItem, error) {
	const query = `
		SELECT id, customer_name, customer_phone, party_size, date, time,
		       duration_min, status, source, special_requests, created_at
		FROM reservations
		WHERE restaurant_id = $1 AND date = $2
		ORDER BY time, created_at`

	rows, err := r.pool.Query(ctx, query, restaurantID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations by date", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(
			&item.ID, &item.CustomerName, &item.CustomerPhone, &item.PartySize,
			&item.Date, &item.Time, &item.DurationMin, &item.Status, &item.Source,
			&item.SpecialRequests, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, nil
}
