package request

import (
	"pet-resort-api/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	PetID    uuid.UUID  `json:"pet_id" binding:"required"`
	OwnerID  *uuid.UUID `json:"owner_id,omitempty"`
	ResortID uuid.UUID  `json:"resort_id" binding:"required"`
	Date     string     `json:"date" binding:"required,datetime=2006-01-02"`
	Note     *string    `json:"note,omitempty" binding:"omitempty,max=500"`
}

// ToDomain books for the caller unless owner_id names someone else.
func (r CreateReservationRequest) ToDomain(caller uuid.UUID) (reservation.Request, error) {
	date, err := reservation.ParseDate(r.Date)
	if err != nil {
		return reservation.Request{}, err
	}

	owner := caller
	if r.OwnerID != nil {
		owner = *r.OwnerID
	}

	note := reservation.NewNote("")
	if r.Note != nil {
		note = reservation.NewNote(*r.Note)
	}

	return reservation.Request{
		PetID:    r.PetID,
		OwnerID:  owner,
		ResortID: r.ResortID,
		Date:     date,
		Note:     note,
	}, nil
}

type AvailabilityQuery struct {
	ResortID string `form:"resortId" binding:"required,uuid"`
	Date     string `form:"date" binding:"required,datetime=2006-01-02"`
}

type DateRangeQuery struct {
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end" binding:"required,datetime=2006-01-02"`
}

func (q DateRangeQuery) ToDomain() (reservation.DateRange, error) {
	start, err := reservation.ParseDate(q.Start)
	if err != nil {
		return reservation.DateRange{}, err
	}
	end, err := reservation.ParseDate(q.End)
	if err != nil {
		return reservation.DateRange{}, err
	}
	return reservation.NewDateRange(start, end)
}
