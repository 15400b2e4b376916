package readstore

import (
	"context"

	"pet-resort-api/internal/domain/reservation"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/pgconv"
	"pet-resort-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	reservationSelect = `
SELECT r.id, r.pet_id, p.name, r.owner_id, u.username, r.resort_id, rs.name, r.date, r.note, r.created_at
FROM reservations r
JOIN pets p ON p.id = r.pet_id
JOIN users u ON u.id = r.owner_id
JOIN resorts rs ON rs.id = r.resort_id`

	findReservationByIDSQL = reservationSelect + `
WHERE r.id = $1`

	findOwnedReservationByIDSQL = reservationSelect + `
WHERE r.id = $1 AND r.owner_id = $2`

	listReservationsSinceSQL = reservationSelect + `
WHERE r.date >= $1
ORDER BY r.date, rs.name`

	listReservationsByOwnerSQL = reservationSelect + `
WHERE r.owner_id = $1
ORDER BY r.date DESC`

	listReservationsByResortSQL = reservationSelect + `
WHERE r.resort_id = $1 AND r.date BETWEEN $2 AND $3
ORDER BY r.date`
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

// FindByID restricts the lookup to ownerID when it is non-nil.
func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*queries.ReservationView, error) {
	sql, args := findReservationByIDSQL, []any{id}
	if ownerID != nil {
		sql, args = findOwnedReservationByIDSQL, append(args, *ownerID)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanReservationView)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) ListSince(ctx context.Context, since reservation.Date) ([]*queries.ReservationView, error) {
	return r.list(ctx, "failed to list recent reservations", listReservationsSinceSQL,
		pgconv.DateToPgtype(since.Time()))
}

func (r *ReservationReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ReservationView, error) {
	return r.list(ctx, "failed to list reservations by owner", listReservationsByOwnerSQL, ownerID)
}

func (r *ReservationReadStore) ListByResort(ctx context.Context, resortID uuid.UUID, period reservation.DateRange) ([]*queries.ReservationView, error) {
	return r.list(ctx, "failed to list reservations by resort", listReservationsByResortSQL,
		resortID,
		pgconv.DateToPgtype(period.Start().Time()),
		pgconv.DateToPgtype(period.End().Time()),
	)
}

func (r *ReservationReadStore) list(ctx context.Context, msg, sql string, args ...any) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	views, err := pgx.CollectRows(rows, scanReservationView)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return views, nil
}

func scanReservationView(row pgx.CollectableRow) (*queries.ReservationView, error) {
	var (
		view queries.ReservationView
		date pgtype.Date
		note pgtype.Text
	)
	err := row.Scan(
		&view.ID, &view.PetID, &view.PetName, &view.OwnerID, &view.OwnerUsername,
		&view.ResortID, &view.ResortName, &date, &note, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if date.Valid {
		view.Date = date.Time.Format(reservation.DateLayout)
	}
	view.Note = pgconv.StringPtrFromPgtype(note)
	return &view, nil
}
