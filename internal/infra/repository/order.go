package repository

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order and its lines in one transaction; a half-written
// order never becomes visible.
func (o *OrderRepository) Create(ctx context.Context, order *commands.OrderSnapshot) (uuid.UUID, error) {
	tx, err := o.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin order transaction", err)
	}
	defer tx.Rollback(ctx)

	const orderQuery = `
		INSERT INTO orders (
			id, restaurant_id, customer_name, customer_phone, customer_email,
			subtotal_cents, tax_cents, total_cents, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`

	_, err = tx.Exec(ctx, orderQuery,
		order.ID, order.RestaurantID, order.CustomerName, order.CustomerPhone,
		order.CustomerEmail, order.SubtotalCents, order.TaxCents, order.TotalCents,
		order.Status,
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("restaurant does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}

	const lineQuery = `
		INSERT INTO order_items (
			id, order_id, menu_item_id, name, quantity, unit_price_cents, total_cents, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for _, line := range order.Lines {
		_, err = tx.Exec(ctx, lineQuery,
			uuid.New(), order.ID, line.MenuItemID, line.Name, line.Quantity,
			line.UnitPriceCents, line.TotalCents, line.Note,
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert order line", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to commit order transaction", err)
	}

	return order.ID, nil
}

// Delete removes the order and its lines; the compensating path after a
// failed checkout-session creation.
func (o *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := o.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return infra.WrapRepoErr("failed to begin delete transaction", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return infra.WrapRepoErr("failed to delete order lines", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit order delete", err)
	}
	return nil
}
