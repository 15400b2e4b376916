package employee

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const MaxTitleLength = 100

var (
	ErrInvalidStatus  = errors.New("status must be active, on_leave or inactive")
	ErrTitleTooLong   = errors.New("title exceeds 100 characters")
	ErrFutureHireDate = errors.New("hire date must not be in the future")
	ErrMissingUser    = errors.New("employee user is required")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusOnLeave  Status = "on_leave"
	StatusInactive Status = "inactive"
)

func (s Status) String() string { return string(s) }

// ParseStatus defaults an empty string to StatusActive.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.TrimSpace(s)); st {
	case "":
		return StatusActive, nil
	case StatusActive, StatusOnLeave, StatusInactive:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Profile is the staff record attached to a user account. The user's role stays on the
// user; the profile only holds employment details.
type Profile struct {
	userID   uuid.UUID
	title    string
	hireDate *time.Time
	status   Status
}

type Attributes struct {
	Title    string
	HireDate *time.Time
	Status   string
}

func NewProfile(userID uuid.UUID, attrs Attributes, now time.Time) (*Profile, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	title := strings.TrimSpace(attrs.Title)
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	status, err := ParseStatus(attrs.Status)
	if err != nil {
		return nil, err
	}
	var hireDate *time.Time
	if attrs.HireDate != nil {
		if attrs.HireDate.After(now) {
			return nil, ErrFutureHireDate
		}
		y, m, d := attrs.HireDate.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		hireDate = &day
	}
	return &Profile{
		userID:   userID,
		title:    title,
		hireDate: hireDate,
		status:   status,
	}, nil
}

func (p *Profile) UserID() uuid.UUID    { return p.userID }
func (p *Profile) Title() string        { return p.title }
func (p *Profile) HireDate() *time.Time { return p.hireDate }
func (p *Profile) Status() Status       { return p.status }
