package shared

import (
	"context"

	"pet-resort-api/internal/domain/reservation"
	"pet-resort-api/internal/domain/resort"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCapacityLookup = errs.New("capacity lookup failed")

// CapacityStore is the slice of a Tx the capacity check reads from.
type CapacityStore interface {
	Resorts() ResortRepository
	Reservations() ReservationRepository
}

// CheckCapacity derives the weekday of date, loads the resort's ceiling for it and counts
// the bookings already on that date. A missing ceiling yields resort.ErrNoLimitConfigured.
func CheckCapacity(ctx context.Context, store CapacityStore, date reservation.Date, resortID uuid.UUID) (resort.Availability, error) {
	weekday := resort.WeekdayOf(date.Time())

	limit, err := store.Resorts().GetCapacityLimit(ctx, resortID, weekday)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return resort.Availability{}, resort.ErrNoLimitConfigured
		}
		return resort.Availability{}, errs.Mark(err, ErrCapacityLookup)
	}
	if limit == nil {
		return resort.Availability{}, resort.ErrNoLimitConfigured
	}

	booked, err := store.Reservations().CountByResortAndDate(ctx, resortID, date)
	if err != nil {
		return resort.Availability{}, errs.Mark(err, ErrCapacityLookup)
	}

	return resort.NewAvailability(*limit, booked), nil
}
