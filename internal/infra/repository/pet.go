package repository

import (
	"context"

	"pet-resort-api/internal/domain/pet"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	createPetSQL = `
INSERT INTO pets (id, name, breed, birthday, weight, height, primary_color, secondary_color)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	linkPetOwnerSQL = `INSERT INTO pets_owners (pet_id, owner_id) VALUES ($1, $2)`

	isPetOwnedBySQL = `SELECT EXISTS (SELECT 1 FROM pets_owners WHERE pet_id = $1 AND owner_id = $2)`

	deletePetSQL = `DELETE FROM pets WHERE id = $1`

	deleteOwnPetSQL = `
DELETE FROM pets
WHERE id = $1
  AND EXISTS (SELECT 1 FROM pets_owners WHERE pet_id = $1 AND owner_id = $2)`
)

type PetRepository struct {
	db db.DBTX
}

func NewPetRepository(db db.DBTX) *PetRepository {
	return &PetRepository{db: db}
}

// Create inserts the pet and its owner link. Callers run it inside a transaction so the
// two rows land together.
func (r *PetRepository) Create(ctx context.Context, p *pet.Pet, ownerID uuid.UUID) error {
	_, err := r.db.Exec(ctx, createPetSQL,
		p.ID(),
		p.Name(),
		p.Breed(),
		pgconv.TimePtrToPgDate(p.Birthday()),
		pgconv.Float64PtrToPgtype(p.Weight()),
		pgconv.Float64PtrToPgtype(p.Height()),
		p.PrimaryColor(),
		p.SecondaryColor(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create pet", err)
	}

	if _, err := r.db.Exec(ctx, linkPetOwnerSQL, p.ID(), ownerID); err != nil {
		return infra.WrapRepoErr("failed to link pet owner", err)
	}
	return nil
}

func (r *PetRepository) IsOwnedBy(ctx context.Context, petID, ownerID uuid.UUID) (bool, error) {
	var owned bool
	if err := r.db.QueryRow(ctx, isPetOwnedBySQL, petID, ownerID).Scan(&owned); err != nil {
		return false, infra.WrapRepoErr("failed to check pet ownership", err)
	}
	return owned, nil
}

func (r *PetRepository) Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (bool, error) {
	var (
		rows int64
		err  error
	)
	if ownerID == nil {
		tag, execErr := r.db.Exec(ctx, deletePetSQL, id)
		rows, err = tag.RowsAffected(), execErr
	} else {
		tag, execErr := r.db.Exec(ctx, deleteOwnPetSQL, id, *ownerID)
		rows, err = tag.RowsAffected(), execErr
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete pet", err)
	}
	return rows > 0, nil
}
