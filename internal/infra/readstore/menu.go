package readstore

import (
	"context"
	"time"

	"tablebook/internal/domain/menu"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuReadStore struct {
	pool *pgxpool.Pool
}

func NewMenuReadStore(pool *pgxpool.Pool) *MenuReadStore {
	return &MenuReadStore{pool: pool}
}

func (m *MenuReadStore) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*queries.MenuItemView, error) {
	const query = `
		SELECT id, name, description, category, price_cents, available
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY category, name`

	rows, err := m.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query menu items", err)
	}
	defer rows.Close()

	var result []*queries.MenuItemView
	for rows.Next() {
		var item queries.MenuItemView
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Category, &item.PriceCents, &item.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read menu items", err)
	}

	return result, nil
}

func (m *MenuReadStore) FindItem(ctx context.Context, restaurantID, itemID uuid.UUID) (*queries.MenuItemView, error) {
	const query = `
		SELECT id, name, description, category, price_cents, available
		FROM menu_items
		WHERE restaurant_id = $1 AND id = $2`

	var item queries.MenuItemView
	err := m.pool.QueryRow(ctx, query, restaurantID, itemID).Scan(
		&item.ID, &item.Name, &item.Description, &item.Category, &item.PriceCents, &item.Available,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item", err)
	}

	return &item, nil
}

// FindItems loads full menu entities for order pricing; absent ids are
// simply missing from the map.
func (m *MenuReadStore) FindItems(ctx context.Context, restaurantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*menu.Item, error) {
	const query = `
		SELECT id, restaurant_id, name, description, category, price_cents, available, created_at, updated_at
		FROM menu_items
		WHERE restaurant_id = $1 AND id = ANY($2)`

	rows, err := m.pool.Query(ctx, query, restaurantID, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query menu items by ids", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*menu.Item, len(ids))
	for rows.Next() {
		var (
			id, rid                     uuid.UUID
			name, description, category string
			priceCents                  int64
			available                   bool
			createdAt, updatedAt        time.Time
		)
		if err := rows.Scan(&id, &rid, &name, &description, &category, &priceCents, &available, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item entity", err)
		}
		result[id] = menu.ReconstructItem(id, rid, name, description, category, priceCents, available, createdAt, updatedAt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read menu item entities", err)
	}

	return result, nil
}
