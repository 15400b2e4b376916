package readstore

import (
	"context"
	"time"

	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/pgconv"
	"pet-resort-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	noteSelect = `
SELECT n.id, n.pet_id, p.name, n.author_id, u.username, n.body, n.date, n.created_at, n.updated_at
FROM notes n
JOIN pets p ON p.id = n.pet_id
JOIN users u ON u.id = n.author_id`

	petOwnedBy = `EXISTS (SELECT 1 FROM pets_owners po WHERE po.pet_id = n.pet_id AND po.owner_id = `

	findNoteByIDSQL = noteSelect + `
WHERE n.id = $1`

	findOwnedNoteByIDSQL = noteSelect + `
WHERE n.id = $1 AND ` + petOwnedBy + `$2)`

	listNotesSinceSQL = noteSelect + `
WHERE n.date >= $1
ORDER BY n.date DESC, n.created_at DESC`

	listNotesByPetSQL = noteSelect + `
WHERE n.pet_id = $1
ORDER BY n.date DESC, n.created_at DESC`

	listNotesByOwnerSQL = noteSelect + `
WHERE ` + petOwnedBy + `$1)
ORDER BY n.date DESC, n.created_at DESC`

	listNotesByAuthorSQL = noteSelect + `
WHERE n.author_id = $1
ORDER BY n.date DESC, n.created_at DESC`
)

type NoteReadStore struct {
	db db.DBTX
}

func NewNoteReadStore(db db.DBTX) *NoteReadStore {
	return &NoteReadStore{db: db}
}

// FindByID only matches notes on ownerID's pets when ownerID is non-nil.
func (r *NoteReadStore) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*queries.NoteView, error) {
	sql, args := findNoteByIDSQL, []any{id}
	if ownerID != nil {
		sql, args = findOwnedNoteByIDSQL, append(args, *ownerID)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find note by ID", err)
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanNoteView)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("note not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find note by ID", err)
	}
	return view, nil
}

func (r *NoteReadStore) ListSince(ctx context.Context, since time.Time) ([]*queries.NoteView, error) {
	return r.list(ctx, "failed to list recent notes", listNotesSinceSQL, pgconv.DateToPgtype(since))
}

func (r *NoteReadStore) ListByPet(ctx context.Context, petID uuid.UUID) ([]*queries.NoteView, error) {
	return r.list(ctx, "failed to list notes by pet", listNotesByPetSQL, petID)
}

func (r *NoteReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.NoteView, error) {
	return r.list(ctx, "failed to list notes by owner", listNotesByOwnerSQL, ownerID)
}

func (r *NoteReadStore) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*queries.NoteView, error) {
	return r.list(ctx, "failed to list notes by author", listNotesByAuthorSQL, authorID)
}

func (r *NoteReadStore) list(ctx context.Context, msg, sql string, args ...any) ([]*queries.NoteView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	views, err := pgx.CollectRows(rows, scanNoteView)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return views, nil
}

func scanNoteView(row pgx.CollectableRow) (*queries.NoteView, error) {
	var (
		view queries.NoteView
		date pgtype.Date
	)
	err := row.Scan(
		&view.ID, &view.PetID, &view.PetName, &view.AuthorID, &view.AuthorUsername,
		&view.Body, &date, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if date.Valid {
		view.Date = date.Time.Format(time.DateOnly)
	}
	return &view, nil
}
