package resort

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNoLimitConfigured means the resort has no capacity row for the weekday. Such days are
// closed for booking, never unlimited.
var ErrNoLimitConfigured = errors.New("no capacity limit configured")

var ErrInvalidCapacity = errors.New("capacity must not be negative")

type CapacityLimit struct {
	ResortID    uuid.UUID
	Weekday     Weekday
	MaxBookings int
}

// Availability is a point-in-time view of a resort's booking load for one date.
type Availability struct {
	ResortID    uuid.UUID
	Weekday     Weekday
	MaxBookings int
	Booked      int
}

func NewAvailability(limit CapacityLimit, booked int) Availability {
	return Availability{
		ResortID:    limit.ResortID,
		Weekday:     limit.Weekday,
		MaxBookings: limit.MaxBookings,
		Booked:      booked,
	}
}

// Permits reports whether one more booking fits: booked < max.
func (a Availability) Permits() bool {
	return a.Booked < a.MaxBookings
}

func (a Availability) Remaining() int {
	if a.Booked >= a.MaxBookings {
		return 0
	}
	return a.MaxBookings - a.Booked
}
