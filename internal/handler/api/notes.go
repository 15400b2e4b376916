package api

import (
	"net/http"

	reqdto "pet-resort-api/internal/handler/dto/request"
	"pet-resort-api/internal/handler/httperr"
	"pet-resort-api/internal/handler/middleware"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/commands"
	"pet-resort-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	cmds commands.NoteCommands
	q    queries.NoteQueries
}

func NewNoteHandler(cmds commands.NoteCommands, q queries.NoteQueries) *NoteHandler {
	return &NoteHandler{cmds: cmds, q: q}
}

// @Summary List recent notes
// @Description Notes dated within the last 30 days
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.NoteView
// @Failure 403 {object} httperr.Response
// @Router /notes [get]
func (h *NoteHandler) ListRecent(c *gin.Context) {
	views, err := h.q.ListRecent(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list notes", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get note
// @Description Owners see notes on their own pets; staff see every note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 200 {object} queries.NoteView
// @Failure 404 {object} httperr.Response
// @Router /notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errPrincipalMissing, "Unauthorized", nil)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		abortNoteErr(c, err, "Failed to load note")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List notes for a pet
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 200 {array} queries.NoteView
// @Failure 404 {object} httperr.Response
// @Router /notes/pet/{id} [get]
func (h *NoteHandler) ListByPet(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errPrincipalMissing, "Unauthorized", nil)
		return
	}
	petID, ok := parseID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListByPet(c.Request.Context(), principal, petID)
	if err != nil {
		abortNoteErr(c, err, "Failed to list notes")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List notes on an owner's pets
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Owner user ID"
// @Success 200 {array} queries.NoteView
// @Failure 403 {object} httperr.Response
// @Router /notes/owner/{id} [get]
func (h *NoteHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list notes", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List notes written by an employee
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee user ID"
// @Success 200 {array} queries.NoteView
// @Failure 403 {object} httperr.Response
// @Router /notes/employee/{id} [get]
func (h *NoteHandler) ListByEmployee(c *gin.Context) {
	authorID, ok := parseID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list notes", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create note
// @Description The caller is recorded as the author; date defaults to today
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateNoteRequest true "Note"
// @Success 201 {object} queries.NoteView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errPrincipalMissing, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), principal, input)
	if err != nil {
		abortNoteErr(c, err, "Create note failed")
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update note text
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Param request body reqdto.UpdateNoteRequest true "Note"
// @Success 200 {object} queries.NoteView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errPrincipalMissing, "Unauthorized", nil)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), principal, id, req.Note)
	if err != nil {
		abortNoteErr(c, err, "Update note failed")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete note
// @Tags notes
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortNoteErr(c, err, "Delete note failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func abortNoteErr(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, commands.ErrInvalidNote):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid note data", nil)
	case errs.Is(err, queries.ErrNoteNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Note not found", nil)
	case errs.Is(err, queries.ErrPetNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Pet not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}
