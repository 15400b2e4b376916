package queries

//go:generate mockgen -source=note.go -destination=../../../tests/mock/queries/note.go -package=queriesmock

import (
	"context"
	"time"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNoteNotFound = errs.New("note not found")

type NoteQueries interface {
	ListRecent(ctx context.Context) ([]*NoteView, error)
	GetByID(ctx context.Context, principal auth.Principal, id uuid.UUID) (*NoteView, error)
	ListByPet(ctx context.Context, principal auth.Principal, petID uuid.UUID) ([]*NoteView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*NoteView, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*NoteView, error)
}

// NoteReadStore scopes by pet ownership wherever it takes an ownerID pointer; nil means
// unscoped.
type NoteReadStore interface {
	ListSince(ctx context.Context, since time.Time) ([]*NoteView, error)
	FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*NoteView, error)
	ListByPet(ctx context.Context, petID uuid.UUID) ([]*NoteView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*NoteView, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*NoteView, error)
}

type noteQueriesImpl struct {
	readStore NoteReadStore
	pets      PetReadStore
	clock     clock.Clock
}

func NewNoteQueries(readStore NoteReadStore, pets PetReadStore, clock clock.Clock) NoteQueries {
	return &noteQueriesImpl{
		readStore: readStore,
		pets:      pets,
		clock:     clock,
	}
}

func (q *noteQueriesImpl) ListRecent(ctx context.Context) ([]*NoteView, error) {
	since := q.clock.Now().UTC().AddDate(0, 0, -RecentWindowDays)
	return q.readStore.ListSince(ctx, since)
}

func (q *noteQueriesImpl) GetByID(ctx context.Context, principal auth.Principal, id uuid.UUID) (*NoteView, error) {
	view, err := q.readStore.FindByID(ctx, id, ownerScope(principal))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListByPet resolves the pet through the caller's ownership scope first, so a plain user
// asking about someone else's pet gets ErrPetNotFound and no notes are read.
func (q *noteQueriesImpl) ListByPet(ctx context.Context, principal auth.Principal, petID uuid.UUID) ([]*NoteView, error) {
	if _, err := q.pets.FindByID(ctx, petID, ownerScope(principal)); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return q.readStore.ListByPet(ctx, petID)
}

func (q *noteQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*NoteView, error) {
	return q.readStore.ListByOwner(ctx, ownerID)
}

func (q *noteQueriesImpl) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*NoteView, error) {
	return q.readStore.ListByAuthor(ctx, authorID)
}
