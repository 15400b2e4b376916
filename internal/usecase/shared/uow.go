package shared

import (
	"context"

	"pet-resort-api/internal/domain/employee"
	"pet-resort-api/internal/domain/note"
	"pet-resort-api/internal/domain/pet"
	"pet-resort-api/internal/domain/reservation"
	"pet-resort-api/internal/domain/resort"
	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: ReadCommitted transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: check-then-insert sequences that must not interleave
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Repositories handed out by a Tx are bound to that transaction.
type Tx interface {
	Users() UserRepository
	Resorts() ResortRepository
	Reservations() ReservationRepository
	Pets() PetRepository
	Notes() NoteRepository
	Employees() EmployeeRepository
	DB() db.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// ChangeRole moves the user from one role to another and reports false when the user
	// does not exist or does not currently hold from.
	ChangeRole(ctx context.Context, id uuid.UUID, from, to user.Role) (bool, error)
}

type ResortRepository interface {
	Create(ctx context.Context, r *resort.Resort) error
	Update(ctx context.Context, r *resort.Resort) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	UpsertHours(ctx context.Context, h resort.Hours) error
	GetCapacityLimit(ctx context.Context, resortID uuid.UUID, weekday resort.Weekday) (*resort.CapacityLimit, error)
}

type ReservationRepository interface {
	CountByResortAndDate(ctx context.Context, resortID uuid.UUID, date reservation.Date) (int, error)
	Create(ctx context.Context, res *reservation.Reservation) error
	// Delete removes the reservation; a non-nil ownerID restricts the delete to that owner.
	Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (bool, error)
}

type PetRepository interface {
	Create(ctx context.Context, p *pet.Pet, ownerID uuid.UUID) error
	IsOwnedBy(ctx context.Context, petID, ownerID uuid.UUID) (bool, error)
	// Delete removes the pet; a non-nil ownerID restricts the delete to that owner's pets.
	Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (bool, error)
}

type NoteRepository interface {
	Create(ctx context.Context, n *note.Note) error
	UpdateBody(ctx context.Context, id uuid.UUID, body string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, p *employee.Profile) error
	Update(ctx context.Context, p *employee.Profile) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID) (bool, error)
}
