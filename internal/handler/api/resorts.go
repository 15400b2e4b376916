package api

import (
	"net/http"

	reqdto "pet-resort-api/internal/handler/dto/request"
	"pet-resort-api/internal/handler/httperr"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/commands"
	"pet-resort-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResortHandler struct {
	cmds commands.ResortCommands
	q    queries.ResortQueries
}

func NewResortHandler(cmds commands.ResortCommands, q queries.ResortQueries) *ResortHandler {
	return &ResortHandler{cmds: cmds, q: q}
}

// @Summary List resorts
// @Tags resorts
// @Produce json
// @Success 200 {array} queries.ResortView
// @Router /resorts [get]
func (h *ResortHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list resorts", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get resort
// @Tags resorts
// @Produce json
// @Param id path string true "Resort ID"
// @Success 200 {object} queries.ResortView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resorts/{id} [get]
func (h *ResortHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortResortErr(c, err, "Failed to load resort")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create resort
// @Tags resorts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ResortRequest true "Resort"
// @Success 201 {object} queries.ResortView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /resorts [post]
func (h *ResortHandler) Create(c *gin.Context) {
	var req reqdto.ResortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req.ToAttributes())
	if err != nil {
		abortResortErr(c, err, "Create resort failed")
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update resort
// @Tags resorts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resort ID"
// @Param request body reqdto.ResortRequest true "Resort"
// @Success 200 {object} queries.ResortView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resorts/{id} [put]
func (h *ResortHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ResortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), id, req.ToAttributes())
	if err != nil {
		abortResortErr(c, err, "Update resort failed")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete resort
// @Tags resorts
// @Security BearerAuth
// @Param id path string true "Resort ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resorts/{id} [delete]
func (h *ResortHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortResortErr(c, err, "Delete resort failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List resort hours
// @Description Opening times and booking capacity per weekday
// @Tags resorts
// @Produce json
// @Param id path string true "Resort ID"
// @Success 200 {array} queries.HoursView
// @Failure 404 {object} httperr.Response
// @Router /resorts/{id}/hours [get]
func (h *ResortHandler) ListHours(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListHours(c.Request.Context(), id)
	if err != nil {
		abortResortErr(c, err, "Failed to load hours")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Set resort hours
// @Description Create or replace the opening times and capacity for one weekday
// @Tags resorts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resort ID"
// @Param weekday path string true "Weekday" Enums(Sunday,Monday,Tuesday,Wednesday,Thursday,Friday,Saturday)
// @Param request body reqdto.SetHoursRequest true "Hours"
// @Success 200 {object} queries.HoursView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resorts/{id}/hours/{weekday} [put]
func (h *ResortHandler) SetHours(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.SetHours(c.Request.Context(), id, c.Param("weekday"), req.ToInput())
	if err != nil {
		abortResortErr(c, err, "Set hours failed")
		return
	}
	c.JSON(http.StatusOK, view)
}

func abortResortErr(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, commands.ErrInvalidResort):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resort data", nil)
	case errs.Is(err, queries.ErrResortNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resort not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
