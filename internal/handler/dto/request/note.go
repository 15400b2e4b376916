package request

import (
	"time"

	"pet-resort-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	PetID uuid.UUID `json:"pet_id" binding:"required"`
	Note  string    `json:"note" binding:"required,max=2000"`
	Date  *string   `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r CreateNoteRequest) ToInput() (commands.NoteInput, error) {
	input := commands.NoteInput{PetID: r.PetID, Body: r.Note}
	if r.Date != nil {
		d, err := time.Parse(time.DateOnly, *r.Date)
		if err != nil {
			return commands.NoteInput{}, err
		}
		input.Date = &d
	}
	return input, nil
}

type UpdateNoteRequest struct {
	Note string `json:"note" binding:"required,max=2000"`
}
