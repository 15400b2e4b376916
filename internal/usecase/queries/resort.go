package queries

//go:generate mockgen -source=resort.go -destination=../../../tests/mock/queries/resort.go -package=queriesmock

import (
	"context"

	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrResortNotFound = errs.New("resort not found")

type ResortQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResortView, error)
	List(ctx context.Context) ([]*ResortView, error)
	ListHours(ctx context.Context, resortID uuid.UUID) ([]*HoursView, error)
}

type ResortReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResortView, error)
	List(ctx context.Context) ([]*ResortView, error)
	ListHours(ctx context.Context, resortID uuid.UUID) ([]*HoursView, error)
}

type resortQueriesImpl struct {
	readStore ResortReadStore
}

func NewResortQueries(readStore ResortReadStore) ResortQueries {
	return &resortQueriesImpl{readStore: readStore}
}

func (q *resortQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResortView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResortNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *resortQueriesImpl) List(ctx context.Context) ([]*ResortView, error) {
	return q.readStore.List(ctx)
}

// ListHours reports ErrResortNotFound for an unknown resort rather than an empty week.
func (q *resortQueriesImpl) ListHours(ctx context.Context, resortID uuid.UUID) ([]*HoursView, error) {
	if _, err := q.GetByID(ctx, resortID); err != nil {
		return nil, err
	}
	return q.readStore.ListHours(ctx, resortID)
}
