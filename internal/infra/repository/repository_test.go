//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"pet-resort-api/internal/domain/employee"
	"pet-resort-api/internal/domain/reservation"
	"pet-resort-api/internal/domain/resort"
	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// stubRow scans a single int-like value or returns err.
type stubRow struct {
	value int64
	err   error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	switch d := dest[0].(type) {
	case *int32:
		*d = int32(r.value)
	case *int64:
		*d = r.value
	case *bool:
		*d = r.value != 0
	}
	return nil
}

func TestGetCapacityLimit(t *testing.T) {
	resortID := uuid.New()

	tests := []struct {
		name     string
		row      stubRow
		wantMax  int
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:    "configured weekday",
			row:     stubRow{value: 3},
			wantMax: 3,
		},
		{
			name:     "no row for weekday",
			row:      stubRow{err: pgx.ErrNoRows},
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			row:      stubRow{err: assert.AnError},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, getCapacityLimitSQL, []any{resortID, "Friday"}).Return(tt.row)

			repo := NewResortRepository(db)
			limit, err := repo.GetCapacityLimit(context.Background(), resortID, resort.Friday)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, limit)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantMax, limit.MaxBookings)
				assert.Equal(t, resort.Friday, limit.Weekday)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestCountByResortAndDate(t *testing.T) {
	resortID := uuid.New()
	date := reservation.NewDate(time.Date(2030, 6, 14, 0, 0, 0, 0, time.UTC))

	db := new(MockDBTX)
	db.On("QueryRow", mock.Anything, countReservationsSQL, mock.Anything).Return(stubRow{value: 2})

	repo := NewReservationRepository(db)
	count, err := repo.CountByResortAndDate(context.Background(), resortID, date)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	db.AssertExpectations(t)
}

func TestReservationDelete(t *testing.T) {
	id := uuid.New()
	owner := uuid.New()

	tests := []struct {
		name    string
		ownerID *uuid.UUID
		query   string
		args    []any
		tag     pgconn.CommandTag
		want    bool
	}{
		{
			name:  "unscoped delete",
			query: deleteReservationSQL,
			args:  []any{id},
			tag:   pgconn.NewCommandTag("DELETE 1"),
			want:  true,
		},
		{
			name:    "owner scoped delete matching",
			ownerID: &owner,
			query:   deleteOwnReservationSQL,
			args:    []any{id, owner},
			tag:     pgconn.NewCommandTag("DELETE 1"),
			want:    true,
		},
		{
			name:    "owner scoped delete of someone else's reservation",
			ownerID: &owner,
			query:   deleteOwnReservationSQL,
			args:    []any{id, owner},
			tag:     pgconn.NewCommandTag("DELETE 0"),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, tt.query, tt.args).Return(tt.tag, nil)

			repo := NewReservationRepository(db)
			deleted, err := repo.Delete(context.Background(), id, tt.ownerID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, deleted)
			db.AssertExpectations(t)
		})
	}
}

func TestWrapRepoErrClassifiesPgCodes(t *testing.T) {
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, deleteUserSQL, mock.Anything).
		Return(pgconn.CommandTag{}, &pgconn.PgError{Code: "23503"})

	repo := NewUserRepository(db)
	_, err := repo.Delete(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
}

func TestChangeRole(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name string
		tag  pgconn.CommandTag
		want bool
	}{
		{name: "user held the expected role", tag: pgconn.NewCommandTag("UPDATE 1"), want: true},
		{name: "user missing or in another role", tag: pgconn.NewCommandTag("UPDATE 0"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, changeUserRoleSQL, []any{id, "user", "employee"}).Return(tt.tag, nil)

			changed, err := NewUserRepository(db).ChangeRole(context.Background(), id, user.RoleUser, user.RoleEmployee)

			require.NoError(t, err)
			assert.Equal(t, tt.want, changed)
			db.AssertExpectations(t)
		})
	}
}

func TestEmployeeCreateDuplicate(t *testing.T) {
	profile, err := employee.NewProfile(uuid.New(), employee.Attributes{Title: "Groomer"}, time.Now())
	require.NoError(t, err)

	db := new(MockDBTX)
	db.On("Exec", mock.Anything, createEmployeeSQL, mock.Anything).
		Return(pgconn.CommandTag{}, &pgconn.PgError{Code: "23505"})

	err = NewEmployeeRepository(db).Create(context.Background(), profile)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestNoteUpdateBody(t *testing.T) {
	id := uuid.New()

	db := new(MockDBTX)
	db.On("Exec", mock.Anything, updateNoteBodySQL, []any{id, "walked twice"}).Return(pgconn.NewCommandTag("UPDATE 0"), nil)

	updated, err := NewNoteRepository(db).UpdateBody(context.Background(), id, "walked twice")

	require.NoError(t, err)
	assert.False(t, updated)
	db.AssertExpectations(t)
}
