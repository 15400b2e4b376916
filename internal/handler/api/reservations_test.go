//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/domain/reservation"
	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/handler/api"
	"pet-resort-api/internal/handler/middleware"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/config"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/pkg/jwt"
	"pet-resort-api/internal/usecase"
	"pet-resort-api/internal/usecase/commands"
	"pet-resort-api/internal/usecase/queries"
	"pet-resort-api/tests/common/authtest"
	"pet-resort-api/tests/common/builder"
	"pet-resort-api/tests/common/httptest"
	"pet-resort-api/tests/common/testutil"
	commandsmock "pet-resort-api/tests/mock/commands"
	queriesmock "pet-resort-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// newAuthedRouter returns an engine whose group "/" already runs RequireAuth, plus a
// token helper signing with the same secret.
func newAuthedRouter(t *testing.T) (*gin.Engine, *gin.RouterGroup, *authtest.JWTHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	svc, err := jwt.NewService(cfg.JWT.Secret, time.Hour, clock.NewRealClock())
	if err != nil {
		t.Fatal(err)
	}
	mw := middleware.NewAuthMiddleware(usecase.NewAuthorizer(svc))
	router := gin.New()
	return router, router.Group("/", mw.RequireAuth()), authtest.NewJWTHelper(cfg.JWT)
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	tokens           *authtest.JWTHelper
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockReservationCommands
	mockQueries      *queriesmock.MockReservationQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	var group *gin.RouterGroup
	s.router, group, s.tokens = newAuthedRouter(s.T())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

	group.POST("/reservations", s.handler.Create)
	group.GET("/reservations/availability", s.handler.Availability)
	group.GET("/reservations/:id", s.handler.Get)
	group.DELETE("/reservations/:id", s.handler.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     testutil.Mutation
	expectCode int
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	ownerID := uuid.New()
	token := s.tokens.GenerateToken(s.T(), ownerID, user.RoleUser)
	rb := builder.NewReservationBuilder().WithOwnerID(ownerID)
	reqBody := rb.BuildCreateRequestDTO()

	s.Run("success: returns 201 with the reservation", func() {
		view := rb.BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), rb.BuildRequest()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)

		var response queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(rb.Date.String(), response.Date)
	})

	s.Run("success: owner defaults to the caller", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("owner_id", nil))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *auth.Principal, req reservation.Request) (*queries.ReservationView, error) {
				s.Equal(ownerID, p.SubjectID)
				s.Equal(ownerID, req.OwnerID)
				return &queries.ReservationView{ID: uuid.New(), OwnerID: req.OwnerID}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, token)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 401 without a token and the workflow is not called", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: workflow outcomes map to status codes", func() {
		cases := []struct {
			name    string
			err     error
			code    int
			message string
		}{
			{name: "forbidden", err: commands.ErrForbidden, code: http.StatusForbidden, message: "Insufficient permissions"},
			{name: "no capacity", err: commands.ErrNoCapacity, code: http.StatusConflict, message: "Resort is fully booked for this date"},
			{name: "pet not owned", err: commands.ErrPetNotOwned, code: http.StatusUnprocessableEntity, message: "Pet does not belong to owner"},
			{name: "invalid reservation", err: errs.Mark(errors.New("date is in the past"), commands.ErrInvalidReservation), code: http.StatusBadRequest, message: "Invalid reservation"},
			{name: "storage", err: errs.Mark(errors.New("commit failed"), commands.ErrStorage), code: http.StatusInternalServerError, message: "Failed to create reservation"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)
				httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.message)
			})
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validation := []testCaseReservation{
			{name: "missing field: pet_id", mutate: testutil.Field("pet_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: resort_id", mutate: testutil.Field("resort_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "date boundary invalid (wrong layout)", mutate: testutil.Field("date", "09/06/2025"), expectCode: http.StatusBadRequest},
			{name: "date boundary invalid (no such day)", mutate: testutil.Field("date", "2025-02-30"), expectCode: http.StatusBadRequest},
			{name: "pet_id not a uuid", mutate: testutil.Field("pet_id", "pet-1"), expectCode: http.StatusBadRequest},
			{name: "note boundary invalid (501 chars)", mutate: testutil.Field("note", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range validation {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, token)
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("success: note boundary OK (500 chars)", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("note", strings.Repeat("a", 500)))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(rb.BuildView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, token)
		s.Equal(http.StatusCreated, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	ownerID := uuid.New()
	view := builder.NewReservationBuilder().WithOwnerID(ownerID).BuildView()
	url := "/reservations/" + view.ID.String()

	s.Run("owner sees the reservation", func() {
		owner := auth.NewPrincipal(ownerID, user.RoleUser)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), owner, view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.tokens.GenerateToken(s.T(), ownerID, user.RoleUser))

		var response queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("employee sees any reservation", func() {
		employee := auth.NewPrincipal(uuid.New(), user.RoleEmployee)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), employee, view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.tokens.GenerateToken(s.T(), employee.SubjectID, user.RoleEmployee))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("another user gets 404 from the scoped lookup", func() {
		stranger := auth.NewPrincipal(uuid.New(), user.RoleUser)
		// The handler hands the caller to the query and never sees the row.
		s.mockQueries.EXPECT().GetByID(gomock.Any(), stranger, view.ID).Return(nil, queries.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.tokens.GenerateToken(s.T(), stranger.SubjectID, user.RoleUser))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+uuid.NewString(), nil, s.tokens.GenerateToken(s.T(), ownerID, user.RoleUser))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, s.tokens.GenerateToken(s.T(), ownerID, user.RoleUser))
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	id := uuid.New()
	token := s.tokens.GenerateToken(s.T(), uuid.New(), user.RoleUser)

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("not found or not owned: 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(commands.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestAvailability() {
	resortID := uuid.New()
	monday := builder.NextWeekday(time.Now().UTC(), time.Monday)
	token := s.tokens.GenerateToken(s.T(), uuid.New(), user.RoleUser)

	s.Run("success", func() {
		view := &queries.AvailabilityView{ResortID: resortID, Date: monday.String(), Weekday: "Monday", Capacity: 2, Booked: 1, Remaining: 1, Available: true}
		s.mockAvailability.EXPECT().CheckAvailability(gomock.Any(), monday, resortID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations/availability?resortId="+resortID.String()+"&date="+monday.String(), nil, token)

		var response queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(*view, response)
	})

	s.Run("bad query", func() {
		for _, q := range []string{
			"",
			"?resortId=" + resortID.String(),
			"?resortId=nope&date=" + monday.String(),
			"?resortId=" + resortID.String() + "&date=2025-13-01",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/availability"+q, nil, token)
			s.Equal(http.StatusBadRequest, rec.Code, q)
		}
	})
}
