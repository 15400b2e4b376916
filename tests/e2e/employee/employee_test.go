//go:build e2e

package employee_test

import (
	"net/http"
	"testing"

	"pet-resort-api/internal/domain/user"
	reqdto "pet-resort-api/internal/handler/dto/request"
	"pet-resort-api/internal/usecase/queries"
	"pet-resort-api/tests/common/authtest"
	"pet-resort-api/tests/common/dbtest"
	"pet-resort-api/tests/common/httptest"
	"pet-resort-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const employeesURL = "/api/employees"

type employeeSuite struct {
	e2e.SharedSuite
}

func TestEmployeeSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(employeeSuite))
}

func (s *employeeSuite) hire(token string, userID uuid.UUID) *queries.EmployeeView {
	hired := "2024-01-15"
	req := reqdto.CreateEmployeeRequest{
		UserID:                 userID,
		EmployeeProfileRequest: reqdto.EmployeeProfileRequest{Title: "Groomer", HireDate: &hired},
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, employeesURL, req, token)
	var view queries.EmployeeView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &view)
	return &view
}

func (s *employeeSuite) TestCreate() {
	s.Run("admin hires a user who becomes an employee", func() {
		_, adminToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "boss", string(user.RoleAdmin))
		candidateID := dbtest.CreateTestUser(s.T(), s.DB, "candidate", string(user.RoleUser))

		view := s.hire(adminToken, candidateID)

		s.Equal(candidateID, view.UserID)
		s.Equal("candidate", view.Username)
		s.Equal("employee", view.Role)
		s.Equal("Groomer", view.Title)
		s.Equal("active", view.Status)
		s.Require().NotNil(view.HireDate)
		s.Equal("2024-01-15", *view.HireDate)
		s.Equal(string(user.RoleEmployee), dbtest.UserRole(s.T(), s.DB, candidateID))
	})

	s.Run("second profile conflicts", func() {
		_, adminToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "boss", string(user.RoleAdmin))
		candidateID := dbtest.CreateTestUser(s.T(), s.DB, "candidate", string(user.RoleUser))
		s.hire(adminToken, candidateID)

		req := reqdto.CreateEmployeeRequest{UserID: candidateID}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, employeesURL, req, adminToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "User is already an employee")
	})

	s.Run("unknown account", func() {
		_, adminToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "boss", string(user.RoleAdmin))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, employeesURL, reqdto.CreateEmployeeRequest{UserID: uuid.New()}, adminToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("only admins hire", func() {
		candidateID := dbtest.CreateTestUser(s.T(), s.DB, "candidate", string(user.RoleUser))
		req := reqdto.CreateEmployeeRequest{UserID: candidateID}

		for _, role := range []user.Role{user.RoleUser, user.RoleEmployee} {
			_, token := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "caller_"+role.String(), string(role))

			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, employeesURL, req, token)

			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
		}
		s.Equal(string(user.RoleUser), dbtest.UserRole(s.T(), s.DB, candidateID))
	})
}

func (s *employeeSuite) TestRead() {
	s.Run("staff list and read profiles, users cannot", func() {
		_, adminToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "boss", string(user.RoleAdmin))
		_, staffToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "colleague", string(user.RoleEmployee))
		_, userToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "customer", string(user.RoleUser))
		hired := s.hire(adminToken, dbtest.CreateTestUser(s.T(), s.DB, "candidate", string(user.RoleUser)))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, employeesURL, nil, staffToken)
		var views []queries.EmployeeView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &views)
		s.Len(views, 1)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, employeesURL+"/"+hired.UserID.String(), nil, staffToken)
		var view queries.EmployeeView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal(hired.UserID, view.UserID)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, employeesURL, nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("missing profile", func() {
		_, staffToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "colleague", string(user.RoleEmployee))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, employeesURL+"/"+uuid.NewString(), nil, staffToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Employee not found")
	})
}

func (s *employeeSuite) TestUpdateAndDelete() {
	s.Run("admin updates the profile", func() {
		_, adminToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "boss", string(user.RoleAdmin))
		hired := s.hire(adminToken, dbtest.CreateTestUser(s.T(), s.DB, "candidate", string(user.RoleUser)))
		path := employeesURL + "/" + hired.UserID.String()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, path,
			reqdto.EmployeeProfileRequest{Title: "Head groomer", Status: "on_leave"}, adminToken)

		var view queries.EmployeeView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal("Head groomer", view.Title)
		s.Equal("on_leave", view.Status)
	})

	s.Run("invalid status is rejected", func() {
		_, adminToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "boss", string(user.RoleAdmin))
		hired := s.hire(adminToken, dbtest.CreateTestUser(s.T(), s.DB, "candidate", string(user.RoleUser)))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, employeesURL+"/"+hired.UserID.String(),
			reqdto.EmployeeProfileRequest{Status: "retired"}, adminToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("employee cannot edit profiles", func() {
		_, adminToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "boss", string(user.RoleAdmin))
		_, staffToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "colleague", string(user.RoleEmployee))
		hired := s.hire(adminToken, dbtest.CreateTestUser(s.T(), s.DB, "candidate", string(user.RoleUser)))
		path := employeesURL + "/" + hired.UserID.String()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, path, reqdto.EmployeeProfileRequest{Title: "Boss"}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, path, nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("delete demotes back to user", func() {
		_, adminToken := authtest.CreateAndAuthenticate(s.T(), s.DB, s.Router, "boss", string(user.RoleAdmin))
		hired := s.hire(adminToken, dbtest.CreateTestUser(s.T(), s.DB, "candidate", string(user.RoleUser)))
		path := employeesURL + "/" + hired.UserID.String()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, path, nil, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(string(user.RoleUser), dbtest.UserRole(s.T(), s.DB, hired.UserID))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, path, nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Employee not found")
	})
}
