package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/domain/reservation"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// RecentWindowDays is how far back the superuser overview reaches.
const RecentWindowDays = 30

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationQueries interface {
	GetByID(ctx context.Context, principal auth.Principal, id uuid.UUID) (*ReservationView, error)
	ListRecent(ctx context.Context) ([]*ReservationView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReservationView, error)
	ListByResort(ctx context.Context, resortID uuid.UUID, period reservation.DateRange) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*ReservationView, error)
	ListSince(ctx context.Context, since reservation.Date) ([]*ReservationView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReservationView, error)
	ListByResort(ctx context.Context, resortID uuid.UUID, period reservation.DateRange) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
	clock     clock.Clock
}

func NewReservationQueries(readStore ReservationReadStore, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

// GetByID reports another owner's reservation as ErrReservationNotFound unless the
// principal is a superuser.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, principal auth.Principal, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id, ownerScope(principal))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListRecent(ctx context.Context) ([]*ReservationView, error) {
	since := reservation.NewDate(q.clock.Now().UTC().AddDate(0, 0, -RecentWindowDays))
	return q.readStore.ListSince(ctx, since)
}

func (q *reservationQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReservationView, error) {
	return q.readStore.ListByOwner(ctx, ownerID)
}

func (q *reservationQueriesImpl) ListByResort(ctx context.Context, resortID uuid.UUID, period reservation.DateRange) ([]*ReservationView, error) {
	return q.readStore.ListByResort(ctx, resortID, period)
}
