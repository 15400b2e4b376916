package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"errors"

	"pet-resort-api/internal/domain/reservation"
	"pet-resort-api/internal/domain/resort"
	"pet-resort-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	CheckAvailability(ctx context.Context, date reservation.Date, resortID uuid.UUID) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityQueries(uow shared.UnitOfWork) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow}
}

// CheckAvailability reads the limit and the count from one snapshot. A weekday without a
// configured limit is reported as unavailable with zero capacity.
func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, date reservation.Date, resortID uuid.UUID) (*AvailabilityView, error) {
	var availability resort.Availability
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		availability, err = shared.CheckCapacity(ctx, tx, date, resortID)
		return err
	})

	view := &AvailabilityView{
		ResortID: resortID,
		Date:     date.String(),
		Weekday:  resort.WeekdayOf(date.Time()).String(),
	}
	switch {
	case errors.Is(err, resort.ErrNoLimitConfigured):
		return view, nil
	case err != nil:
		return nil, err
	}

	view.Capacity = availability.MaxBookings
	view.Booked = availability.Booked
	view.Remaining = availability.Remaining()
	view.Available = availability.Permits()
	return view, nil
}
