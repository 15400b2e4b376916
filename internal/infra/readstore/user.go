package readstore

import (
	"context"

	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/pgconv"
	"pet-resort-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	userColumns = `id, username, email, first_name, last_name, avatar_link, role, created_at`

	findUserByIDSQL       = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	findUserByUsernameSQL = `SELECT ` + userColumns + `, password_hash FROM users WHERE username = $1`
	listUsersSQL          = `SELECT ` + userColumns + ` FROM users ORDER BY username`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	rows, err := r.db.Query(ctx, findUserByIDSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanUserView)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

// FindByUsername also returns the stored bcrypt hash for credential checks.
func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.UserView, string, error) {
	var (
		view       queries.UserView
		avatarLink pgtype.Text
		hash       string
	)
	err := r.db.QueryRow(ctx, findUserByUsernameSQL, username).Scan(
		&view.ID, &view.Username, &view.Email, &view.FirstName, &view.LastName,
		&avatarLink, &view.Role, &view.CreatedAt, &hash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}
	view.AvatarLink = pgconv.StringPtrFromPgtype(avatarLink)
	return &view, hash, nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.db.Query(ctx, listUsersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	views, err := pgx.CollectRows(rows, scanUserView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	return views, nil
}

func scanUserView(row pgx.CollectableRow) (*queries.UserView, error) {
	var (
		view       queries.UserView
		avatarLink pgtype.Text
	)
	err := row.Scan(
		&view.ID, &view.Username, &view.Email, &view.FirstName, &view.LastName,
		&avatarLink, &view.Role, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.AvatarLink = pgconv.StringPtrFromPgtype(avatarLink)
	return &view, nil
}
