package reservation

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
	ErrPastDate    = errors.New("date must not be in the past")
)

// Date is a calendar day at UTC midnight. Reservations are counted per (resort, Date).
type Date struct {
	value time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{value: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return NewDate(t), nil
}

func (d Date) Time() time.Time {
	return d.value
}

func (d Date) String() string {
	return d.value.Format(DateLayout)
}

func (d Date) IsZero() bool {
	return d.value.IsZero()
}

func (d Date) Before(other Date) bool {
	return d.value.Before(other.value)
}

// DateRange is inclusive on both ends.
type DateRange struct {
	start Date
	end   Date
}

func NewDateRange(start, end Date) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, errors.New("end date must not precede start date")
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() Date { return r.start }
func (r DateRange) End() Date   { return r.end }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
