package readstore

import (
	"context"

	"pet-resort-api/internal/domain/resort"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/pgconv"
	"pet-resort-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	resortColumns = `id, name, street, city, state, zip_code, latitude, longitude, created_at, updated_at`

	findResortByIDSQL = `SELECT ` + resortColumns + ` FROM resorts WHERE id = $1`
	listResortsSQL    = `SELECT ` + resortColumns + ` FROM resorts ORDER BY name`

	listResortHoursSQL = `
SELECT day, opens, closes, capacity
FROM resort_hours
WHERE resort_id = $1
ORDER BY array_position(ARRAY['Sunday','Monday','Tuesday','Wednesday','Thursday','Friday','Saturday'], day)`
)

type ResortReadStore struct {
	db db.DBTX
}

func NewResortReadStore(db db.DBTX) *ResortReadStore {
	return &ResortReadStore{db: db}
}

func (r *ResortReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResortView, error) {
	rows, err := r.db.Query(ctx, findResortByIDSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find resort by ID", err)
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanResortView)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resort not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resort by ID", err)
	}
	return view, nil
}

func (r *ResortReadStore) List(ctx context.Context) ([]*queries.ResortView, error) {
	rows, err := r.db.Query(ctx, listResortsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resorts", err)
	}
	views, err := pgx.CollectRows(rows, scanResortView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resorts", err)
	}
	return views, nil
}

func (r *ResortReadStore) ListHours(ctx context.Context, resortID uuid.UUID) ([]*queries.HoursView, error) {
	rows, err := r.db.Query(ctx, listResortHoursSQL, resortID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resort hours", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.HoursView, error) {
		var (
			day           string
			opens, closes pgtype.Time
			capacity      int32
		)
		if err := row.Scan(&day, &opens, &closes, &capacity); err != nil {
			return nil, err
		}
		return &queries.HoursView{
			Weekday:  day,
			Opens:    resort.FormatClock(pgconv.DurationFromPgTime(opens)),
			Closes:   resort.FormatClock(pgconv.DurationFromPgTime(closes)),
			Capacity: int(capacity),
		}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resort hours", err)
	}
	return views, nil
}

func scanResortView(row pgx.CollectableRow) (*queries.ResortView, error) {
	var (
		view     queries.ResortView
		lat, lng pgtype.Float8
	)
	err := row.Scan(
		&view.ID, &view.Name, &view.Street, &view.City, &view.State, &view.ZipCode,
		&lat, &lng, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.Latitude = pgconv.Float64PtrFromPgtype(lat)
	view.Longitude = pgconv.Float64PtrFromPgtype(lng)
	return &view, nil
}
