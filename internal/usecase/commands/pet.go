package commands

//go:generate mockgen -source=pet.go -destination=../../../tests/mock/commands/pet.go -package=commandsmock

import (
	"context"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/domain/pet"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/queries"
	"pet-resort-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidPet    = errs.New("invalid pet")
	ErrOwnerNotFound = errs.New("owner not found")
)

type PetCommands interface {
	Create(ctx context.Context, principal auth.Principal, ownerID *uuid.UUID, attrs pet.Attributes) (*queries.PetView, error)
	Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error
}

type petCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPetCommands(uow shared.UnitOfWork, clock clock.Clock) PetCommands {
	return &petCommandsImpl{uow: uow, clock: clock}
}

// Create registers a pet for ownerID, defaulting to the caller. Only superusers may
// register a pet on someone else's behalf.
func (c *petCommandsImpl) Create(ctx context.Context, principal auth.Principal, ownerID *uuid.UUID, attrs pet.Attributes) (*queries.PetView, error) {
	owner := principal.SubjectID
	if ownerID != nil && *ownerID != principal.SubjectID {
		if !auth.RequireSuperUser(principal) {
			return nil, ErrForbidden
		}
		owner = *ownerID
	}

	now := c.clock.Now()
	p, err := pet.NewPet(attrs, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPet)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Pets().Create(ctx, p, owner)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	return &queries.PetView{
		ID:             p.ID(),
		Name:           p.Name(),
		Breed:          p.Breed(),
		Birthday:       p.Birthday(),
		Weight:         p.Weight(),
		Height:         p.Height(),
		PrimaryColor:   p.PrimaryColor(),
		SecondaryColor: p.SecondaryColor(),
		CreatedAt:      now,
	}, nil
}

// Delete is scoped to the caller's own pets for plain users.
func (c *petCommandsImpl) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	var ownerID *uuid.UUID
	if auth.RequireUserOnly(principal) {
		subject := principal.SubjectID
		ownerID = &subject
	}

	var deleted bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		deleted, err = tx.Pets().Delete(ctx, id, ownerID)
		return err
	})
	if err != nil {
		return err
	}
	if !deleted {
		return queries.ErrPetNotFound
	}
	return nil
}
