//go:build unit || e2e

package builder

import (
	"time"

	"pet-resort-api/internal/domain/reservation"
	reqdto "pet-resort-api/internal/handler/dto/request"
	"pet-resort-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// NextWeekday returns the first date strictly after from that falls on day.
func NextWeekday(from time.Time, day time.Weekday) reservation.Date {
	d := from.AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return reservation.NewDate(d)
}

type ReservationBuilder struct {
	PetID    uuid.UUID
	OwnerID  uuid.UUID
	ResortID uuid.UUID
	Date     reservation.Date
	Note     string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		PetID:    uuid.New(),
		OwnerID:  uuid.New(),
		ResortID: uuid.New(),
		Date:     NextWeekday(time.Now().UTC(), time.Monday),
		Note:     "Needs a quiet room",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildRequest() reservation.Request {
	return reservation.Request{
		PetID:    r.PetID,
		OwnerID:  r.OwnerID,
		ResortID: r.ResortID,
		Date:     r.Date,
		Note:     reservation.NewNote(r.Note),
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	ownerID := r.OwnerID
	note := r.Note
	return reqdto.CreateReservationRequest{
		PetID:    r.PetID,
		OwnerID:  &ownerID,
		ResortID: r.ResortID,
		Date:     r.Date.String(),
		Note:     &note,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	note := r.Note
	return &queries.ReservationView{
		ID:        uuid.New(),
		PetID:     r.PetID,
		OwnerID:   r.OwnerID,
		ResortID:  r.ResortID,
		Date:      r.Date.String(),
		Note:      &note,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithOwnerID(ownerID uuid.UUID) *ReservationBuilder {
	r.OwnerID = ownerID
	return r
}

func (r *ReservationBuilder) WithPetID(petID uuid.UUID) *ReservationBuilder {
	r.PetID = petID
	return r
}

func (r *ReservationBuilder) WithResortID(resortID uuid.UUID) *ReservationBuilder {
	r.ResortID = resortID
	return r
}

func (r *ReservationBuilder) WithDate(date reservation.Date) *ReservationBuilder {
	r.Date = date
	return r
}
