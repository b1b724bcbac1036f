//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt of "password123", the password every test staff account uses.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// DefaultSettingsJSON gives a restaurant evening hours every day of the week
// with a small floor, so availability tests can fill it up quickly.
const DefaultSettingsJSON = `{
	"capacity": {
		"maxTables": 2,
		"seatsPerTable": 4,
		"defaultReservationDuration": 90,
		"operatingHours": {
			"monday":    {"open": "17:00", "close": "22:00"},
			"tuesday":   {"open": "17:00", "close": "22:00"},
			"wednesday": {"open": "17:00", "close": "22:00"},
			"thursday":  {"open": "17:00", "close": "22:00"},
			"friday":    {"open": "17:00", "close": "23:00"},
			"saturday":  {"open": "17:00", "close": "23:00"},
			"sunday":    {"open": "17:00", "close": "21:00"}
		}
	},
	"assistant": {
		"personality": "friendly",
		"monthlyMessageLimit": 3
	}
}`

func CreateTestRestaurant(t *testing.T, db DBLike, name, settingsJSON string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()

	if settingsJSON == "" {
		settingsJSON = "{}"
	}
	_, err := db.Exec(ctx, `
		INSERT INTO restaurants (id, name, timezone, address, phone, settings)
		VALUES ($1, $2, 'UTC', '1 Test Street', '555-0100', $3)`,
		id, name, settingsJSON)
	require.NoError(t, err)

	return id
}

func CreateTestStaff(t *testing.T, db DBLike, restaurantID uuid.UUID, email, role string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, restaurant_id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (email) DO NOTHING`,
		id, restaurantID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	}

	return id
}

func CreateTestMenuItem(t *testing.T, db DBLike, restaurantID uuid.UUID, name, category string, priceCents int64, available bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO menu_items (id, restaurant_id, name, description, category, price_cents, available)
		VALUES ($1, $2, $3, '', $4, $5, $6)`,
		id, restaurantID, name, category, priceCents, available)
	require.NoError(t, err)

	return id
}

func CreateTestReservation(t *testing.T, db DBLike, restaurantID uuid.UUID, date, timeStr string, partySize int, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO reservations (
			id, restaurant_id, customer_name, customer_phone, customer_email,
			party_size, date, time, duration_min, status, source, special_requests
		) VALUES ($1, $2, 'Seed Guest', '555-0101', NULL, $3, $4, $5, 90, $6, 'website', NULL)`,
		id, restaurantID, partySize, date, timeStr, status)
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
