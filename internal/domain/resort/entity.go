package resort

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName        = errors.New("resort name is required")
	ErrInvalidCoordinates = errors.New("latitude must be within [-90,90] and longitude within [-180,180]")
	ErrInvalidHours       = errors.New("opening time must be before closing time")
	ErrInvalidClock       = errors.New("time of day must be HH:MM")
)

type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

type Resort struct {
	id        uuid.UUID
	name      string
	address   Address
	latitude  *float64
	longitude *float64
}

func NewResort(id uuid.UUID, name string, address Address, latitude, longitude *float64) (*Resort, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if latitude != nil && (*latitude < -90 || *latitude > 90) {
		return nil, ErrInvalidCoordinates
	}
	if longitude != nil && (*longitude < -180 || *longitude > 180) {
		return nil, ErrInvalidCoordinates
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Resort{
		id:        id,
		name:      name,
		address:   address,
		latitude:  latitude,
		longitude: longitude,
	}, nil
}

func (r *Resort) ID() uuid.UUID       { return r.id }
func (r *Resort) Name() string        { return r.name }
func (r *Resort) Address() Address    { return r.address }
func (r *Resort) Latitude() *float64  { return r.latitude }
func (r *Resort) Longitude() *float64 { return r.longitude }

// Hours is one resort_hours row: opening times plus the booking ceiling for that weekday.
type Hours struct {
	ResortID uuid.UUID
	Weekday  Weekday
	Opens    time.Duration
	Closes   time.Duration
	Capacity int
}

func NewHours(resortID uuid.UUID, weekday Weekday, opens, closes time.Duration, capacity int) (Hours, error) {
	if _, err := ParseWeekday(string(weekday)); err != nil {
		return Hours{}, err
	}
	if capacity < 0 {
		return Hours{}, ErrInvalidCapacity
	}
	if opens < 0 || closes > 24*time.Hour || opens >= closes {
		return Hours{}, ErrInvalidHours
	}
	return Hours{
		ResortID: resortID,
		Weekday:  weekday,
		Opens:    opens,
		Closes:   closes,
		Capacity: capacity,
	}, nil
}

func (h Hours) Limit() CapacityLimit {
	return CapacityLimit{ResortID: h.ResortID, Weekday: h.Weekday, MaxBookings: h.Capacity}
}

// ParseClock reads "HH:MM" as an offset from midnight. "24:00" is accepted as end of day.
func ParseClock(s string) (time.Duration, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil || len(s) != 5 {
		return 0, ErrInvalidClock
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, ErrInvalidClock
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

func FormatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}
