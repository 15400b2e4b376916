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
	petColumns = `p.id, p.name, p.breed, p.birthday, p.weight, p.height, p.primary_color, p.secondary_color, p.created_at`

	listPetsSQL = `SELECT ` + petColumns + ` FROM pets p ORDER BY p.name`

	listPetsByOwnerSQL = `
SELECT ` + petColumns + `
FROM pets p
JOIN pets_owners po ON po.pet_id = p.id
WHERE po.owner_id = $1
ORDER BY p.name`

	findPetByIDSQL = `SELECT ` + petColumns + ` FROM pets p WHERE p.id = $1`

	findOwnPetByIDSQL = `
SELECT ` + petColumns + `
FROM pets p
JOIN pets_owners po ON po.pet_id = p.id
WHERE p.id = $1 AND po.owner_id = $2`
)

type PetReadStore struct {
	db db.DBTX
}

func NewPetReadStore(db db.DBTX) *PetReadStore {
	return &PetReadStore{db: db}
}

// List returns every pet, or only ownerID's pets when ownerID is non-nil.
func (r *PetReadStore) List(ctx context.Context, ownerID *uuid.UUID) ([]*queries.PetView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if ownerID == nil {
		rows, err = r.db.Query(ctx, listPetsSQL)
	} else {
		rows, err = r.db.Query(ctx, listPetsByOwnerSQL, *ownerID)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets", err)
	}
	views, err := pgx.CollectRows(rows, scanPetView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets", err)
	}
	return views, nil
}

// FindByID scopes the lookup to ownerID when it is non-nil; another owner's pet is reported
// as not found.
func (r *PetReadStore) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*queries.PetView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if ownerID == nil {
		rows, err = r.db.Query(ctx, findPetByIDSQL, id)
	} else {
		rows, err = r.db.Query(ctx, findOwnPetByIDSQL, id, *ownerID)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pet by ID", err)
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanPetView)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pet by ID", err)
	}
	return view, nil
}

func scanPetView(row pgx.CollectableRow) (*queries.PetView, error) {
	var (
		view           queries.PetView
		birthday       pgtype.Date
		weight, height pgtype.Float8
	)
	err := row.Scan(
		&view.ID, &view.Name, &view.Breed, &birthday, &weight, &height,
		&view.PrimaryColor, &view.SecondaryColor, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.Birthday = pgconv.TimePtrFromPgDate(birthday)
	view.Weight = pgconv.Float64PtrFromPgtype(weight)
	view.Height = pgconv.Float64PtrFromPgtype(height)
	return &view, nil
}
