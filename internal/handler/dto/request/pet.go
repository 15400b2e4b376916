package request

import (
	"time"

	"pet-resort-api/internal/domain/pet"

	"github.com/google/uuid"
)

type CreatePetRequest struct {
	Name           string     `json:"name" binding:"required,max=100"`
	Breed          string     `json:"breed" binding:"max=100"`
	Birthday       *string    `json:"birthday,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Weight         *float64   `json:"weight,omitempty" binding:"omitempty,min=0"`
	Height         *float64   `json:"height,omitempty" binding:"omitempty,min=0"`
	PrimaryColor   string     `json:"primary_color" binding:"max=50"`
	SecondaryColor string     `json:"secondary_color" binding:"max=50"`
	OwnerID        *uuid.UUID `json:"owner_id,omitempty"`
}

func (r CreatePetRequest) ToAttributes() (pet.Attributes, error) {
	attrs := pet.Attributes{
		Name:           r.Name,
		Breed:          r.Breed,
		Weight:         r.Weight,
		Height:         r.Height,
		PrimaryColor:   r.PrimaryColor,
		SecondaryColor: r.SecondaryColor,
	}
	if r.Birthday != nil {
		b, err := time.Parse(time.DateOnly, *r.Birthday)
		if err != nil {
			return pet.Attributes{}, err
		}
		attrs.Birthday = &b
	}
	return attrs, nil
}
