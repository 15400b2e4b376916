package repository

import (
	"context"

	"pet-resort-api/internal/domain/resort"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	createResortSQL = `
INSERT INTO resorts (id, name, street, city, state, zip_code, latitude, longitude)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	updateResortSQL = `
UPDATE resorts
SET name = $2, street = $3, city = $4, state = $5, zip_code = $6,
    latitude = $7, longitude = $8, updated_at = now()
WHERE id = $1`

	deleteResortSQL = `DELETE FROM resorts WHERE id = $1`

	upsertHoursSQL = `
INSERT INTO resort_hours (resort_id, day, opens, closes, capacity)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (resort_id, day)
DO UPDATE SET opens = EXCLUDED.opens, closes = EXCLUDED.closes, capacity = EXCLUDED.capacity`

	getCapacityLimitSQL = `SELECT capacity FROM resort_hours WHERE resort_id = $1 AND day = $2`
)

type ResortRepository struct {
	db db.DBTX
}

func NewResortRepository(db db.DBTX) *ResortRepository {
	return &ResortRepository{db: db}
}

func (r *ResortRepository) Create(ctx context.Context, rs *resort.Resort) error {
	addr := rs.Address()
	_, err := r.db.Exec(ctx, createResortSQL,
		rs.ID(), rs.Name(),
		addr.Street, addr.City, addr.State, addr.ZipCode,
		pgconv.Float64PtrToPgtype(rs.Latitude()),
		pgconv.Float64PtrToPgtype(rs.Longitude()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create resort", err)
	}
	return nil
}

func (r *ResortRepository) Update(ctx context.Context, rs *resort.Resort) (bool, error) {
	addr := rs.Address()
	tag, err := r.db.Exec(ctx, updateResortSQL,
		rs.ID(), rs.Name(),
		addr.Street, addr.City, addr.State, addr.ZipCode,
		pgconv.Float64PtrToPgtype(rs.Latitude()),
		pgconv.Float64PtrToPgtype(rs.Longitude()),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update resort", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ResortRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteResortSQL, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete resort", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ResortRepository) UpsertHours(ctx context.Context, h resort.Hours) error {
	_, err := r.db.Exec(ctx, upsertHoursSQL,
		h.ResortID,
		h.Weekday.String(),
		pgconv.DurationToPgTime(h.Opens),
		pgconv.DurationToPgTime(h.Closes),
		h.Capacity,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert resort hours", err)
	}
	return nil
}

// GetCapacityLimit returns a KindNotFound error when the resort has no row for weekday.
func (r *ResortRepository) GetCapacityLimit(ctx context.Context, resortID uuid.UUID, weekday resort.Weekday) (*resort.CapacityLimit, error) {
	var capacity int32
	err := r.db.QueryRow(ctx, getCapacityLimitSQL, resortID, weekday.String()).Scan(&capacity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("capacity limit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get capacity limit", err)
	}

	return &resort.CapacityLimit{
		ResortID:    resortID,
		Weekday:     weekday,
		MaxBookings: int(capacity),
	}, nil
}
