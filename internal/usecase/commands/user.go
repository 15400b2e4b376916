package commands

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=commandsmock

import (
	"context"

	"pet-resort-api/internal/usecase/queries"
	"pet-resort-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

// Delete removes the account together with its pets' owner links and reservations.
func (u *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted bool
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		deleted, err = tx.Users().Delete(ctx, id)
		return err
	})
	if err != nil {
		return err
	}
	if !deleted {
		return queries.ErrUserNotFound
	}
	return nil
}
