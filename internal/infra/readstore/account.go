package readstore

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountReadStore struct {
	pool *pgxpool.Pool
}

func NewAccountReadStore(pool *pgxpool.Pool) *AccountReadStore {
	return &AccountReadStore{pool: pool}
}

const accountColumns = `id, restaurant_id, email, password_hash, role, is_active`

func (a *AccountReadStore) FindByEmail(ctx context.Context, email string) (*commands.AccountSnapshot, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE email = $1`
	return a.scanAccount(a.pool.QueryRow(ctx, query, email), "email")
}

func (a *AccountReadStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.AccountSnapshot, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE id = $1`
	return a.scanAccount(a.pool.QueryRow(ctx, query, id), "ID")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (a *AccountReadStore) scanAccount(row rowScanner, by string) (*commands.AccountSnapshot, error) {
	var acc commands.AccountSnapshot
	err := row.Scan(&acc.ID, &acc.RestaurantID, &acc.Email, &acc.PasswordHash, &acc.Role, &acc.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found by "+by, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account by "+by, err)
	}
	return &acc, nil
}
