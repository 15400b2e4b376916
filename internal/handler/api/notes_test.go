//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/domain/note"
	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/handler/api"
	reqdto "pet-resort-api/internal/handler/dto/request"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/commands"
	"pet-resort-api/internal/usecase/queries"
	"pet-resort-api/tests/common/authtest"
	"pet-resort-api/tests/common/httptest"
	commandsmock "pet-resort-api/tests/mock/commands"
	queriesmock "pet-resort-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NoteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	tokens       *authtest.JWTHelper
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNoteCommands
	mockQueries  *queriesmock.MockNoteQueries
}

func (s *NoteHandlerTestSuite) SetupTest() {
	var group *gin.RouterGroup
	s.router, group, s.tokens = newAuthedRouter(s.T())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNoteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNoteQueries(s.mockCtrl)
	h := api.NewNoteHandler(s.mockCommands, s.mockQueries)

	group.POST("/notes", h.Create)
	group.GET("/notes/:id", h.Get)
	group.GET("/notes/pet/:id", h.ListByPet)
	group.DELETE("/notes/:id", h.Delete)
}

func (s *NoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(NoteHandlerTestSuite))
}

func (s *NoteHandlerTestSuite) TestCreate() {
	staffID := uuid.New()
	token := s.tokens.GenerateToken(s.T(), staffID, user.RoleEmployee)
	petID := uuid.New()

	s.Run("success: date is parsed and the caller is passed through", func() {
		date := "2025-05-30"
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p auth.Principal, in commands.NoteInput) (*queries.NoteView, error) {
				s.Equal(staffID, p.SubjectID)
				s.Equal(petID, in.PetID)
				s.Require().NotNil(in.Date)
				s.Equal(date, in.Date.Format("2006-01-02"))
				return &queries.NoteView{ID: uuid.New(), PetID: petID, Date: date}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notes",
			reqdto.CreateNoteRequest{PetID: petID, Note: "groomed", Date: &date}, token)

		var view queries.NoteView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &view)
		s.Equal(date, view.Date)
	})

	s.Run("error: body over the limit is rejected at binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notes",
			reqdto.CreateNoteRequest{PetID: petID, Note: strings.Repeat("x", note.MaxBodyLength+1)}, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: outcomes map to status codes", func() {
		cases := []struct {
			err     error
			code    int
			message string
		}{
			{err: errs.Mark(note.ErrEmptyBody, commands.ErrInvalidNote), code: http.StatusBadRequest, message: "Invalid note data"},
			{err: queries.ErrPetNotFound, code: http.StatusNotFound, message: "Pet not found"},
			{err: errors.New("db down"), code: http.StatusInternalServerError, message: "Create note failed"},
		}
		for _, tc := range cases {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notes",
				reqdto.CreateNoteRequest{PetID: petID, Note: "text"}, token)

			httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.message)
		}
	})
}

func (s *NoteHandlerTestSuite) TestRead() {
	ownerID := uuid.New()
	token := s.tokens.GenerateToken(s.T(), ownerID, user.RoleUser)

	s.Run("success: lookup carries the caller", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), auth.NewPrincipal(ownerID, user.RoleUser), id).
			Return(&queries.NoteView{ID: id}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notes/"+id.String(), nil, token)

		var view queries.NoteView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal(id, view.ID)
	})

	s.Run("error: scoped misses are 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrNoteNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notes/"+uuid.NewString(), nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Note not found")

		s.mockQueries.EXPECT().ListByPet(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrPetNotFound).Times(1)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notes/pet/"+uuid.NewString(), nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pet not found")
	})

	s.Run("error: malformed id never reaches the query", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notes/not-a-uuid", nil, token)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *NoteHandlerTestSuite) TestDelete() {
	token := s.tokens.GenerateToken(s.T(), uuid.New(), user.RoleEmployee)
	id := uuid.New()

	s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/notes/"+id.String(), nil, token)
	s.Equal(http.StatusNoContent, rec.Code)

	s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(queries.ErrNoteNotFound).Times(1)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/notes/"+id.String(), nil, token)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Note not found")
}
