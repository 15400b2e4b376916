package resort

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidWeekday = errors.New("invalid weekday")

// Weekday is the day name stored in resort_hours.day.
type Weekday string

const (
	Sunday    Weekday = "Sunday"
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// indexed by time.Weekday (Sunday=0 through Saturday=6)
var weekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func AllWeekdays() []Weekday {
	out := make([]Weekday, len(weekdays))
	copy(out, weekdays[:])
	return out
}

// WeekdayOf derives the weekday of a calendar date. The date is read in its own location,
// so callers pass dates normalized by reservation.NewDate.
func WeekdayOf(date time.Time) Weekday {
	return weekdays[date.Weekday()]
}

// ParseWeekday accepts a day name in any letter case.
func ParseWeekday(s string) (Weekday, error) {
	for _, w := range weekdays {
		if strings.EqualFold(string(w), strings.TrimSpace(s)) {
			return w, nil
		}
	}
	return "", ErrInvalidWeekday
}

func (w Weekday) String() string {
	return string(w)
}
