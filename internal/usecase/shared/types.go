package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReservationCreated is emitted after a reservation commits.
type ReservationCreated struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	PetID         uuid.UUID `json:"pet_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	ResortID      uuid.UUID `json:"resort_id"`
	Date          string    `json:"date"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, evt ReservationCreated) error
}

// RateLimitResult describes one rate limiter decision.
type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}
