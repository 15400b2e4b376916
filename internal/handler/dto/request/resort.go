package request

import (
	"pet-resort-api/internal/usecase/commands"
)

type ResortRequest struct {
	Name      string   `json:"name" binding:"required,max=200"`
	Street    string   `json:"street" binding:"max=200"`
	City      string   `json:"city" binding:"max=100"`
	State     string   `json:"state" binding:"max=100"`
	ZipCode   string   `json:"zip_code" binding:"max=20"`
	Latitude  *float64 `json:"latitude,omitempty" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" binding:"omitempty,min=-180,max=180"`
}

func (r ResortRequest) ToAttributes() commands.ResortAttributes {
	return commands.ResortAttributes{
		Name:      r.Name,
		Street:    r.Street,
		City:      r.City,
		State:     r.State,
		ZipCode:   r.ZipCode,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

// SetHoursRequest times are "HH:MM"; capacity 0 closes the day for booking.
type SetHoursRequest struct {
	Opens    string `json:"opens" binding:"required,len=5"`
	Closes   string `json:"closes" binding:"required,len=5"`
	Capacity *int   `json:"capacity" binding:"required,min=0"`
}

func (r SetHoursRequest) ToInput() commands.HoursInput {
	return commands.HoursInput{
		Opens:    r.Opens,
		Closes:   r.Closes,
		Capacity: *r.Capacity,
	}
}
