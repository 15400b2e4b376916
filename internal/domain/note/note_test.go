//go:build unit

package note_test

import (
	"strings"
	"testing"
	"time"

	"pet-resort-api/internal/domain/note"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNote(t *testing.T) {
	author, pet := uuid.New(), uuid.New()
	afternoon := time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC)

	t.Run("body is trimmed and date truncated to the day", func(t *testing.T) {
		n, err := note.NewNote(author, pet, "  ate all of dinner \n", afternoon)
		require.NoError(t, err)
		assert.Equal(t, "ate all of dinner", n.Body())
		assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), n.Date())
		assert.NotEqual(t, uuid.Nil, n.ID())
		assert.Equal(t, author, n.AuthorID())
		assert.Equal(t, pet, n.PetID())
	})

	cases := []struct {
		name   string
		author uuid.UUID
		pet    uuid.UUID
		body   string
		want   error
	}{
		{name: "blank body", author: author, pet: pet, body: "   ", want: note.ErrEmptyBody},
		{name: "body over limit", author: author, pet: pet, body: strings.Repeat("a", note.MaxBodyLength+1), want: note.ErrBodyTooLong},
		{name: "missing author", author: uuid.Nil, pet: pet, body: "ok", want: note.ErrNoAuthor},
		{name: "missing pet", author: author, pet: uuid.Nil, body: "ok", want: note.ErrNoPet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := note.NewNote(tc.author, tc.pet, tc.body, afternoon)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("limit counts runes", func(t *testing.T) {
		_, err := note.NewNote(author, pet, strings.Repeat("\u00e9", note.MaxBodyLength), afternoon)
		assert.NoError(t, err)
	})
}
