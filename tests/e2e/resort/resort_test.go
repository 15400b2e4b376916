//go:build e2e

package resort_test

import (
	"net/http"
	"testing"

	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/usecase/queries"
	"pet-resort-api/tests/common/authtest"
	"pet-resort-api/tests/common/builder"
	"pet-resort-api/tests/common/httptest"
	"pet-resort-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const resortsURL = "/api/resorts"

type resortSuite struct {
	e2e.SharedSuite
}

func TestResortSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(resortSuite))
}

func (s *resortSuite) createResort(token string) queries.ResortView {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, resortsURL, builder.NewResortBuilder().BuildDTO(), token)
	var view queries.ResortView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &view)
	return view
}

func (s *resortSuite) TestLifecycle() {
	s.Run("admin manages resorts, anyone reads them", func() {
		_, adminToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "boss", string(user.RoleAdmin))
		created := s.createResort(adminToken)
		s.Equal("Happy Paws Resort", created.Name)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, resortsURL+"/"+created.ID.String(), nil, "")
		var got queries.ResortView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(created.ID, got.ID)

		update := builder.NewResortBuilder().WithName("Happier Paws").BuildDTO()
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, resortsURL+"/"+created.ID.String(), update, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("Happier Paws", got.Name)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, resortsURL+"/"+created.ID.String(), nil, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, resortsURL+"/"+created.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resort not found")
	})

	s.Run("non-admins cannot write", func() {
		_, userToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "plain", string(user.RoleUser))
		_, staffToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "staff", string(user.RoleEmployee))

		for _, token := range []string{userToken, staffToken} {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, resortsURL, builder.NewResortBuilder().BuildDTO(), token)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, resortsURL, builder.NewResortBuilder().BuildDTO(), "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("unknown resort", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, resortsURL+"/"+uuid.NewString(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *resortSuite) TestHours() {
	s.Run("admin sets capacity per weekday", func() {
		_, adminToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "boss", string(user.RoleAdmin))
		resort := s.createResort(adminToken)
		hoursURL := resortsURL + "/" + resort.ID.String() + "/hours"

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, hoursURL+"/Monday", builder.BuildHoursDTO("08:00", "18:00", 12), adminToken)
		var hours queries.HoursView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &hours)
		s.Equal(queries.HoursView{Weekday: "Monday", Opens: "08:00", Closes: "18:00", Capacity: 12}, hours)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, hoursURL+"/Monday", builder.BuildHoursDTO("09:00", "17:00", 4), adminToken)
		s.Equal(http.StatusOK, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, hoursURL, nil, "")
		var all []queries.HoursView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &all)
		s.Require().Len(all, 1)
		s.Equal(4, all[0].Capacity)
	})

	s.Run("invalid hours", func() {
		_, adminToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "boss", string(user.RoleAdmin))
		resort := s.createResort(adminToken)
		hoursURL := resortsURL + "/" + resort.ID.String() + "/hours"

		cases := map[string]struct {
			weekday string
			body    any
		}{
			"unknown weekday":      {weekday: "Funday", body: builder.BuildHoursDTO("08:00", "18:00", 1)},
			"closes before opens":  {weekday: "Monday", body: builder.BuildHoursDTO("18:00", "08:00", 1)},
			"negative capacity":    {weekday: "Monday", body: builder.BuildHoursDTO("08:00", "18:00", -1)},
			"malformed clock time": {weekday: "Monday", body: builder.BuildHoursDTO("8am!!", "18:00", 1)},
		}
		for name, tc := range cases {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, hoursURL+"/"+tc.weekday, tc.body, adminToken)
			s.Equal(http.StatusBadRequest, rec.Code, name)
		}
	})

	s.Run("user cannot set hours", func() {
		_, adminToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "boss", string(user.RoleAdmin))
		_, userToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "plain", string(user.RoleUser))
		resort := s.createResort(adminToken)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			resortsURL+"/"+resort.ID.String()+"/hours/Monday", builder.BuildHoursDTO("08:00", "18:00", 99), userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}
