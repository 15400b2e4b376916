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

	"pet-resort-api/internal/domain/reservation"
	"pet-resort-api/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var defaultHash = sync.OnceValue(func() string {
	h, err := password.Hash(DefaultPassword, password.MinCost)
	if err != nil {
		panic(err)
	}
	return h
})

func CreateTestUser(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, username, email, password_hash, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, 'Test', 'User', $5) ON CONFLICT (username) DO NOTHING`,
		userID, username, username+"@example.com", defaultHash(), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
	}

	return userID
}

func CreateTestResort(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	resortID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO resorts (id, name, street, city, state, zip_code) VALUES ($1, $2, '1 Kennel Way', 'Portland', 'OR', '97201')",
		resortID, name)
	require.NoError(t, err)
	return resortID
}

// SetCapacity configures 08:00-18:00 hours with the given booking ceiling for one weekday.
func SetCapacity(t *testing.T, db DBLike, resortID uuid.UUID, weekday string, capacity int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `INSERT INTO resort_hours (resort_id, day, opens, closes, capacity)
		VALUES ($1, $2, '08:00', '18:00', $3)
		ON CONFLICT (resort_id, day) DO UPDATE SET capacity = EXCLUDED.capacity`,
		resortID, weekday, capacity)
	require.NoError(t, err)
}

func CreateTestPet(t *testing.T, db DBLike, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	petID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO pets (id, name, breed) VALUES ($1, $2, 'Beagle')", petID, name)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO pets_owners (pet_id, owner_id) VALUES ($1, $2)", petID, ownerID)
	require.NoError(t, err)
	return petID
}

func CreateTestReservation(t *testing.T, db DBLike, petID, ownerID, resortID uuid.UUID, date reservation.Date) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO reservations (id, pet_id, owner_id, resort_id, date) VALUES ($1, $2, $3, $4, $5)",
		id, petID, ownerID, resortID, date.Time())
	require.NoError(t, err)
	return id
}

func CreateTestNote(t *testing.T, db DBLike, authorID, petID uuid.UUID, body string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO notes (id, author_id, pet_id, body, date) VALUES ($1, $2, $3, $4, CURRENT_DATE)",
		id, authorID, petID, body)
	require.NoError(t, err)
	return id
}

func UserRole(t *testing.T, db DBLike, userID uuid.UUID) string {
	t.Helper()

	var role string
	err := db.QueryRow(context.Background(), "SELECT role FROM users WHERE id = $1", userID).Scan(&role)
	require.NoError(t, err)
	return role
}

func CountReservations(t *testing.T, db DBLike, resortID uuid.UUID, date reservation.Date) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM reservations WHERE resort_id = $1 AND date = $2", resortID, date.Time()).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
