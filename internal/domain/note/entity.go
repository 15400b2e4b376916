package note

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxBodyLength is counted in runes.
const MaxBodyLength = 2000

var (
	ErrEmptyBody   = errors.New("note body is required")
	ErrBodyTooLong = errors.New("note body exceeds 2000 characters")
	ErrNoAuthor    = errors.New("note author is required")
	ErrNoPet       = errors.New("note pet is required")
)

// Note is a staff remark about one pet on one day.
type Note struct {
	id       uuid.UUID
	authorID uuid.UUID
	petID    uuid.UUID
	body     string
	date     time.Time
}

func NewNote(authorID, petID uuid.UUID, body string, date time.Time) (*Note, error) {
	if authorID == uuid.Nil {
		return nil, ErrNoAuthor
	}
	if petID == uuid.Nil {
		return nil, ErrNoPet
	}
	clean, err := NormalizeBody(body)
	if err != nil {
		return nil, err
	}
	y, m, d := date.Date()
	return &Note{
		id:       uuid.New(),
		authorID: authorID,
		petID:    petID,
		body:     clean,
		date:     time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}, nil
}

// NormalizeBody trims the text and enforces the length bounds.
func NormalizeBody(body string) (string, error) {
	clean := strings.TrimSpace(body)
	if clean == "" {
		return "", ErrEmptyBody
	}
	if utf8.RuneCountInString(clean) > MaxBodyLength {
		return "", ErrBodyTooLong
	}
	return clean, nil
}

func (n *Note) ID() uuid.UUID       { return n.id }
func (n *Note) AuthorID() uuid.UUID { return n.authorID }
func (n *Note) PetID() uuid.UUID    { return n.petID }
func (n *Note) Body() string        { return n.body }
func (n *Note) Date() time.Time     { return n.date }
