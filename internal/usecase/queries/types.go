package queries

import (
	"time"

	"github.com/google/uuid"
)

type UserView struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	AvatarLink *string   `json:"avatar_link,omitempty"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

type ResortView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HoursView times are "HH:MM" in the resort's local clock.
type HoursView struct {
	Weekday  string `json:"weekday"`
	Opens    string `json:"opens"`
	Closes   string `json:"closes"`
	Capacity int    `json:"capacity"`
}

type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	PetID         uuid.UUID `json:"pet_id"`
	PetName       string    `json:"pet_name,omitempty"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OwnerUsername string    `json:"owner_username,omitempty"`
	ResortID      uuid.UUID `json:"resort_id"`
	ResortName    string    `json:"resort_name,omitempty"`
	Date          string    `json:"date"`
	Note          *string   `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type PetView struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Breed          string     `json:"breed"`
	Birthday       *time.Time `json:"birthday,omitempty"`
	Weight         *float64   `json:"weight,omitempty"`
	Height         *float64   `json:"height,omitempty"`
	PrimaryColor   string     `json:"primary_color"`
	SecondaryColor string     `json:"secondary_color"`
	CreatedAt      time.Time  `json:"created_at"`
}

type AvailabilityView struct {
	ResortID  uuid.UUID `json:"resort_id"`
	Date      string    `json:"date"`
	Weekday   string    `json:"weekday"`
	Capacity  int       `json:"capacity"`
	Booked    int       `json:"booked"`
	Remaining int       `json:"remaining"`
	Available bool      `json:"available"`
}

type NoteView struct {
	ID             uuid.UUID `json:"id"`
	PetID          uuid.UUID `json:"pet_id"`
	PetName        string    `json:"pet_name,omitempty"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username,omitempty"`
	Body           string    `json:"note"`
	Date           string    `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EmployeeView joins the employee profile with its user account; the password hash never
// leaves the read store.
type EmployeeView struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Title     string    `json:"title"`
	HireDate  *string   `json:"hire_date,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
