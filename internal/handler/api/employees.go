package api

import (
	"net/http"

	reqdto "pet-resort-api/internal/handler/dto/request"
	"pet-resort-api/internal/handler/httperr"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/commands"
	"pet-resort-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	cmds commands.EmployeeCommands
	q    queries.EmployeeQueries
}

func NewEmployeeHandler(cmds commands.EmployeeCommands, q queries.EmployeeQueries) *EmployeeHandler {
	return &EmployeeHandler{cmds: cmds, q: q}
}

// @Summary List employees
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.EmployeeView
// @Failure 403 {object} httperr.Response
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list employees", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get employee
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee user ID"
// @Success 200 {object} queries.EmployeeView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortEmployeeErr(c, err, "Failed to load employee")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create employee
// @Description Attaches an employee profile to an existing user and promotes a plain user to the employee role
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} queries.EmployeeView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req reqdto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	attrs, err := req.ToAttributes()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req.UserID, attrs)
	if err != nil {
		abortEmployeeErr(c, err, "Create employee failed")
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee user ID"
// @Param request body reqdto.EmployeeProfileRequest true "Profile"
// @Success 200 {object} queries.EmployeeView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.EmployeeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	attrs, err := req.ToAttributes()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), id, attrs)
	if err != nil {
		abortEmployeeErr(c, err, "Update employee failed")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Remove employee profile
// @Description Deletes the profile and demotes an employee to a plain user; the account stays
// @Tags employees
// @Security BearerAuth
// @Param id path string true "Employee user ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortEmployeeErr(c, err, "Delete employee failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func abortEmployeeErr(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, commands.ErrInvalidEmployee):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid employee data", nil)
	case errs.Is(err, commands.ErrAlreadyEmployee):
		httperr.AbortWithError(c, http.StatusConflict, err, "User is already an employee", nil)
	case errs.Is(err, queries.ErrEmployeeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Employee not found", nil)
	case errs.Is(err, queries.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}
