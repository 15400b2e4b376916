package repository

import (
	"context"

	"pet-resort-api/internal/domain/note"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	createNoteSQL = `
INSERT INTO notes (id, author_id, pet_id, body, date)
VALUES ($1, $2, $3, $4, $5)`

	updateNoteBodySQL = `UPDATE notes SET body = $2, updated_at = now() WHERE id = $1`

	deleteNoteSQL = `DELETE FROM notes WHERE id = $1`
)

type NoteRepository struct {
	db db.DBTX
}

func NewNoteRepository(db db.DBTX) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	_, err := r.db.Exec(ctx, createNoteSQL,
		n.ID(),
		n.AuthorID(),
		n.PetID(),
		n.Body(),
		pgconv.DateToPgtype(n.Date()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create note", err)
	}
	return nil
}

func (r *NoteRepository) UpdateBody(ctx context.Context, id uuid.UUID, body string) (bool, error) {
	tag, err := r.db.Exec(ctx, updateNoteBodySQL, id, body)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update note", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteNoteSQL, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete note", err)
	}
	return tag.RowsAffected() > 0, nil
}
