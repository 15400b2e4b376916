package commands

//go:generate mockgen -source=note.go -destination=../../../tests/mock/commands/note.go -package=commandsmock

import (
	"context"
	"time"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/domain/note"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/queries"
	"pet-resort-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidNote = errs.New("invalid note")

// NoteInput.Date defaults to today.
type NoteInput struct {
	PetID uuid.UUID
	Body  string
	Date  *time.Time
}

type NoteCommands interface {
	Create(ctx context.Context, principal auth.Principal, input NoteInput) (*queries.NoteView, error)
	Update(ctx context.Context, principal auth.Principal, id uuid.UUID, body string) (*queries.NoteView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteCommandsImpl struct {
	uow         shared.UnitOfWork
	noteQueries queries.NoteQueries
	clock       clock.Clock
}

func NewNoteCommands(uow shared.UnitOfWork, noteQueries queries.NoteQueries, clock clock.Clock) NoteCommands {
	return &noteCommandsImpl{uow: uow, noteQueries: noteQueries, clock: clock}
}

// Create records a note authored by the caller.
func (c *noteCommandsImpl) Create(ctx context.Context, principal auth.Principal, input NoteInput) (*queries.NoteView, error) {
	date := c.clock.Now()
	if input.Date != nil {
		date = *input.Date
	}
	n, err := note.NewNote(principal.SubjectID, input.PetID, input.Body, date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidNote)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notes().Create(ctx, n)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, queries.ErrPetNotFound
		}
		return nil, err
	}

	return c.noteQueries.GetByID(ctx, principal, n.ID())
}

func (c *noteCommandsImpl) Update(ctx context.Context, principal auth.Principal, id uuid.UUID, body string) (*queries.NoteView, error) {
	clean, err := note.NormalizeBody(body)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidNote)
	}

	var updated bool
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		updated, err = tx.Notes().UpdateBody(ctx, id, clean)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, queries.ErrNoteNotFound
	}

	return c.noteQueries.GetByID(ctx, principal, id)
}

func (c *noteCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		deleted, err = tx.Notes().Delete(ctx, id)
		return err
	})
	if err != nil {
		return err
	}
	if !deleted {
		return queries.ErrNoteNotFound
	}
	return nil
}
