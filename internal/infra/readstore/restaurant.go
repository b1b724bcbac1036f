package readstore

import (
	"context"
	"encoding/json"

	"tablebook/internal/domain/restaurant"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RestaurantReadStore struct {
	pool *pgxpool.Pool
}

func NewRestaurantReadStore(pool *pgxpool.Pool) *RestaurantReadStore {
	return &RestaurantReadStore{pool: pool}
}

// FindByID loads the restaurant and resolves its settings document once, so
// callers never see a partially-defaulted configuration.
func (r *RestaurantReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RestaurantView, error) {
	const query = `
		SELECT id, name, timezone, address, phone, settings, created_at, updated_at
		FROM restaurants
		WHERE id = $1`

	var (
		view        queries.RestaurantView
		settingsDoc []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Timezone, &view.Address, &view.Phone,
		&settingsDoc, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find restaurant by ID", err)
	}

	var raw restaurant.RawSettings
	if len(settingsDoc) > 0 {
		if err := json.Unmarshal(settingsDoc, &raw); err != nil {
			return nil, infra.WrapRepoErr("failed to decode restaurant settings", err)
		}
	}
	view.Settings = restaurant.Resolve(raw)

	return &view, nil
}
