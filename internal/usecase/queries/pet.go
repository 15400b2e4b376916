package queries

//go:generate mockgen -source=pet.go -destination=../../../tests/mock/queries/pet.go -package=queriesmock

import (
	"context"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPetNotFound = errs.New("pet not found")

type PetQueries interface {
	List(ctx context.Context, principal auth.Principal) ([]*PetView, error)
	GetByID(ctx context.Context, principal auth.Principal, id uuid.UUID) (*PetView, error)
}

type PetReadStore interface {
	List(ctx context.Context, ownerID *uuid.UUID) ([]*PetView, error)
	FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*PetView, error)
}

type petQueriesImpl struct {
	readStore PetReadStore
}

func NewPetQueries(readStore PetReadStore) PetQueries {
	return &petQueriesImpl{readStore: readStore}
}

func (q *petQueriesImpl) List(ctx context.Context, principal auth.Principal) ([]*PetView, error) {
	return q.readStore.List(ctx, ownerScope(principal))
}

func (q *petQueriesImpl) GetByID(ctx context.Context, principal auth.Principal, id uuid.UUID) (*PetView, error) {
	view, err := q.readStore.FindByID(ctx, id, ownerScope(principal))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return view, nil
}

// Superusers see every pet; everyone else sees only the pets they own.
func ownerScope(principal auth.Principal) *uuid.UUID {
	if auth.RequireSuperUser(principal) {
		return nil
	}
	id := principal.SubjectID
	return &id
}
