package repository

import (
	"context"

	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	createUserSQL = `
INSERT INTO users (id, username, email, password_hash, first_name, last_name, avatar_link, role)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	deleteUserSQL = `DELETE FROM users WHERE id = $1`

	changeUserRoleSQL = `UPDATE users SET role = $3, updated_at = now() WHERE id = $1 AND role = $2`
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, createUserSQL,
		u.ID(),
		u.Username().Value(),
		u.Email().Value(),
		u.PasswordHash(),
		u.FirstName(),
		u.LastName(),
		pgconv.StringPtrToPgtype(u.AvatarLink()),
		u.Role().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteUserSQL, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete user", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) ChangeRole(ctx context.Context, id uuid.UUID, from, to user.Role) (bool, error) {
	tag, err := r.db.Exec(ctx, changeUserRoleSQL, id, from.String(), to.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to change user role", err)
	}
	return tag.RowsAffected() > 0, nil
}
