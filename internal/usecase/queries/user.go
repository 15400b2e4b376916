package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

import (
	"context"

	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByUsername(ctx context.Context, username string) (*UserView, string, error)
	List(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	user, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	return q.readStore.List(ctx)
}
