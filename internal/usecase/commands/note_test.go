//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/domain/note"
	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/commands"
	"pet-resort-api/internal/usecase/queries"
	"pet-resort-api/tests/common/uowtest"
	queriesmock "pet-resort-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NoteCommandsTestSuite struct {
	suite.Suite
	store   *uowtest.Memory
	queries *queriesmock.MockNoteQueries
	cmds    commands.NoteCommands

	staff auth.Principal
	petID uuid.UUID
}

func (s *NoteCommandsTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.store = uowtest.NewMemory()
	s.queries = queriesmock.NewMockNoteQueries(ctrl)
	s.cmds = commands.NewNoteCommands(s.store, s.queries, clock.NewMockClock(wednesday))

	s.staff = auth.NewPrincipal(uuid.New(), user.RoleEmployee)
	s.petID = uuid.New()
	s.store.AddPet(s.petID, uuid.New())
}

func TestNoteCommandsSuite(t *testing.T) {
	suite.Run(t, new(NoteCommandsTestSuite))
}

// expectView answers the post-write lookup with whatever id the command asks for.
func (s *NoteCommandsTestSuite) expectView() *uuid.UUID {
	var seen uuid.UUID
	s.queries.EXPECT().GetByID(gomock.Any(), s.staff, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ auth.Principal, id uuid.UUID) (*queries.NoteView, error) {
			seen = id
			return &queries.NoteView{ID: id, PetID: s.petID}, nil
		}).Times(1)
	return &seen
}

func (s *NoteCommandsTestSuite) TestCreate() {
	s.Run("caller is the author and date defaults to today", func() {
		s.SetupTest()
		seen := s.expectView()

		view, err := s.cmds.Create(context.Background(), s.staff, commands.NoteInput{PetID: s.petID, Body: "  ate well  "})

		s.Require().NoError(err)
		s.Equal(*seen, view.ID)
		n, ok := s.store.Note(view.ID)
		s.Require().True(ok)
		s.Equal(s.staff.SubjectID, n.AuthorID())
		s.Equal("ate well", n.Body())
		s.Equal(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), n.Date())
	})

	s.Run("explicit date is kept", func() {
		s.SetupTest()
		s.expectView()
		date := time.Date(2025, 5, 30, 15, 0, 0, 0, time.UTC)

		view, err := s.cmds.Create(context.Background(), s.staff, commands.NoteInput{PetID: s.petID, Body: "groomed", Date: &date})

		s.Require().NoError(err)
		n, _ := s.store.Note(view.ID)
		s.Equal(time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC), n.Date())
	})

	s.Run("unknown pet maps to pet not found", func() {
		s.SetupTest()

		view, err := s.cmds.Create(context.Background(), s.staff, commands.NoteInput{PetID: uuid.New(), Body: "hello"})

		s.Nil(view)
		s.True(errs.Is(err, queries.ErrPetNotFound))
	})

	s.Run("invalid body never reaches storage", func() {
		for _, body := range []string{"   ", strings.Repeat("x", note.MaxBodyLength+1)} {
			s.SetupTest()

			_, err := s.cmds.Create(context.Background(), s.staff, commands.NoteInput{PetID: s.petID, Body: body})

			s.True(errs.Is(err, commands.ErrInvalidNote))
			s.Zero(s.store.Units)
		}
	})
}

func (s *NoteCommandsTestSuite) TestUpdate() {
	s.Run("body is replaced", func() {
		s.SetupTest()
		s.expectView()
		created, err := s.cmds.Create(context.Background(), s.staff, commands.NoteInput{PetID: s.petID, Body: "first"})
		s.Require().NoError(err)
		s.expectView()

		_, err = s.cmds.Update(context.Background(), s.staff, created.ID, " second ")

		s.Require().NoError(err)
		body, ok := s.store.NoteBody(created.ID)
		s.True(ok)
		s.Equal("second", body)
	})

	s.Run("missing note", func() {
		s.SetupTest()

		_, err := s.cmds.Update(context.Background(), s.staff, uuid.New(), "text")

		s.True(errs.Is(err, queries.ErrNoteNotFound))
	})

	s.Run("empty body is invalid", func() {
		s.SetupTest()

		_, err := s.cmds.Update(context.Background(), s.staff, uuid.New(), "")

		s.True(errs.Is(err, commands.ErrInvalidNote))
		s.Zero(s.store.Units)
	})
}

func (s *NoteCommandsTestSuite) TestDelete() {
	s.SetupTest()
	s.expectView()
	created, err := s.cmds.Create(context.Background(), s.staff, commands.NoteInput{PetID: s.petID, Body: "bye"})
	s.Require().NoError(err)

	s.Require().NoError(s.cmds.Delete(context.Background(), created.ID))
	_, ok := s.store.Note(created.ID)
	s.False(ok)

	err = s.cmds.Delete(context.Background(), created.ID)
	s.True(errs.Is(err, queries.ErrNoteNotFound))
}
