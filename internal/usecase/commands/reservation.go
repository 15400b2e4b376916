package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/domain/reservation"
	"pet-resort-api/internal/domain/resort"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/queries"
	"pet-resort-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated     = errs.New("unauthenticated")
	ErrForbidden           = errs.New("forbidden")
	ErrNoCapacity          = errs.New("resort is fully booked for this date")
	ErrStorage             = errs.New("storage failure")
	ErrInvalidReservation  = errs.New("invalid reservation request")
	ErrPetNotOwned         = errs.New("pet does not belong to owner")
	ErrReservationNotFound = errs.New("reservation not found")
)

var errFullyBooked = errs.New("fully booked")

type ReservationCommands interface {
	Create(ctx context.Context, principal *auth.Principal, req reservation.Request) (*queries.ReservationView, error)
	Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clock clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clock,
	}
}

// Create runs authentication, authorization, the capacity check and the insert in that
// order. The last two share one serializable transaction, so two requests racing for the
// final slot cannot both commit.
func (r *reservationCommandsImpl) Create(ctx context.Context, principal *auth.Principal, req reservation.Request) (*queries.ReservationView, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	if !auth.RequireSuperUser(*principal) && !auth.RequireSelfOrAdmin(*principal, req.OwnerID) {
		return nil, ErrForbidden
	}

	res, err := reservation.NewReservation(r.clock, req)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	err = r.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		owned, err := tx.Pets().IsOwnedBy(ctx, res.PetID(), res.OwnerID())
		if err != nil {
			return err
		}
		if !owned {
			return ErrPetNotOwned
		}

		availability, err := shared.CheckCapacity(ctx, tx, res.Date(), res.ResortID())
		if err != nil {
			return err
		}
		if !availability.Permits() {
			return errFullyBooked
		}

		return tx.Reservations().Create(ctx, res)
	})
	if err != nil {
		return nil, classifyCreateErr(err)
	}

	slog.InfoContext(ctx, "reservation created",
		"reservation_id", res.ID().String(),
		"resort_id", res.ResortID().String(),
		"date", res.Date().String())

	r.publishCreated(ctx, res)

	return toReservationView(res), nil
}

// Delete lets admins remove any reservation and everyone else only their own. The owner
// filter is part of the DELETE itself; a reservation that exists but belongs to someone
// else is reported as not found.
func (r *reservationCommandsImpl) Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error {
	if principal == nil {
		return ErrUnauthenticated
	}

	var ownerID *uuid.UUID
	if !auth.RequireAdmin(*principal) {
		subject := principal.SubjectID
		ownerID = &subject
	}

	var deleted bool
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		deleted, err = tx.Reservations().Delete(ctx, id, ownerID)
		return err
	})
	if err != nil {
		return errs.Mark(err, ErrStorage)
	}
	if !deleted {
		return ErrReservationNotFound
	}
	return nil
}

func classifyCreateErr(err error) error {
	switch {
	case errors.Is(err, errFullyBooked), errors.Is(err, resort.ErrNoLimitConfigured):
		return ErrNoCapacity
	case errors.Is(err, ErrPetNotOwned):
		return ErrPetNotOwned
	default:
		return errs.Mark(err, ErrStorage)
	}
}

func (r *reservationCommandsImpl) publishCreated(ctx context.Context, res *reservation.Reservation) {
	if r.publisher == nil {
		return
	}
	evt := shared.ReservationCreated{
		ReservationID: res.ID(),
		PetID:         res.PetID(),
		OwnerID:       res.OwnerID(),
		ResortID:      res.ResortID(),
		Date:          res.Date().String(),
		OccurredAt:    r.clock.Now(),
	}
	if err := r.publisher.PublishReservationCreated(ctx, evt); err != nil {
		slog.WarnContext(ctx, "failed to publish reservation event",
			"reservation_id", res.ID().String(),
			"error", err.Error())
	}
}

func toReservationView(res *reservation.Reservation) *queries.ReservationView {
	view := &queries.ReservationView{
		ID:        res.ID(),
		PetID:     res.PetID(),
		OwnerID:   res.OwnerID(),
		ResortID:  res.ResortID(),
		Date:      res.Date().String(),
		CreatedAt: res.CreatedAt(),
	}
	if !res.Note().IsEmpty() {
		note := res.Note().String()
		view.Note = &note
	}
	return view
}
