package reservation

import (
	"errors"
	"time"

	"pet-resort-api/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrMissingPet    = errors.New("pet is required")
	ErrMissingOwner  = errors.New("owner is required")
	ErrMissingResort = errors.New("resort is required")
)

// Request is the transient booking input. It becomes a Reservation only after the
// capacity check passes.
type Request struct {
	PetID    uuid.UUID
	OwnerID  uuid.UUID
	ResortID uuid.UUID
	Date     Date
	Note     Note
}

func (r Request) Validate(c clock.Clock) error {
	switch {
	case r.PetID == uuid.Nil:
		return ErrMissingPet
	case r.OwnerID == uuid.Nil:
		return ErrMissingOwner
	case r.ResortID == uuid.Nil:
		return ErrMissingResort
	case r.Date.IsZero():
		return ErrInvalidDate
	}
	if r.Date.Before(NewDate(c.Now().UTC())) {
		return ErrPastDate
	}
	return nil
}

type Reservation struct {
	id        uuid.UUID
	petID     uuid.UUID
	ownerID   uuid.UUID
	resortID  uuid.UUID
	date      Date
	note      Note
	createdAt time.Time
}

func NewReservation(c clock.Clock, req Request) (*Reservation, error) {
	if err := req.Validate(c); err != nil {
		return nil, err
	}
	return &Reservation{
		id:        uuid.New(),
		petID:     req.PetID,
		ownerID:   req.OwnerID,
		resortID:  req.ResortID,
		date:      req.Date,
		note:      req.Note,
		createdAt: c.Now(),
	}, nil
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) PetID() uuid.UUID     { return r.petID }
func (r *Reservation) OwnerID() uuid.UUID   { return r.ownerID }
func (r *Reservation) ResortID() uuid.UUID  { return r.resortID }
func (r *Reservation) Date() Date           { return r.date }
func (r *Reservation) Note() Note           { return r.note }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
