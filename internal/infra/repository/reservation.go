package repository

import (
	"context"

	"pet-resort-api/internal/domain/reservation"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	countReservationsSQL = `SELECT COUNT(*) FROM reservations WHERE resort_id = $1 AND date = $2`

	createReservationSQL = `
INSERT INTO reservations (id, pet_id, owner_id, resort_id, date, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	deleteReservationSQL = `DELETE FROM reservations WHERE id = $1`

	deleteOwnReservationSQL = `DELETE FROM reservations WHERE id = $1 AND owner_id = $2`
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) CountByResortAndDate(ctx context.Context, resortID uuid.UUID, date reservation.Date) (int, error) {
	var count int64
	err := r.db.QueryRow(ctx, countReservationsSQL, resortID, pgconv.DateToPgtype(date.Time())).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return int(count), nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	note := pgtype.Text{}
	if !res.Note().IsEmpty() {
		note = pgtype.Text{String: res.Note().String(), Valid: true}
	}

	_, err := r.db.Exec(ctx, createReservationSQL,
		res.ID(),
		res.PetID(),
		res.OwnerID(),
		res.ResortID(),
		pgconv.DateToPgtype(res.Date().Time()),
		note,
		res.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (bool, error) {
	var (
		tagRows int64
		err     error
	)
	if ownerID == nil {
		tag, execErr := r.db.Exec(ctx, deleteReservationSQL, id)
		tagRows, err = tag.RowsAffected(), execErr
	} else {
		tag, execErr := r.db.Exec(ctx, deleteOwnReservationSQL, id, *ownerID)
		tagRows, err = tag.RowsAffected(), execErr
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return tagRows > 0, nil
}
