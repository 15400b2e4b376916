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

type PetHandler struct {
	cmds commands.PetCommands
	q    queries.PetQueries
}

func NewPetHandler(cmds commands.PetCommands, q queries.PetQueries) *PetHandler {
	return &PetHandler{cmds: cmds, q: q}
}

// @Summary List pets
// @Description Superusers see every pet, users see their own
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PetView
// @Router /pets [get]
func (h *PetHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errPrincipalMissing, "Unauthorized", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), principal)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list pets", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get pet
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 200 {object} queries.PetView
// @Failure 404 {object} httperr.Response
// @Router /pets/{id} [get]
func (h *PetHandler) Get(c *gin.Context) {
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
		if errs.Is(err, queries.ErrPetNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Pet not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load pet", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Register pet
// @Description Creates the pet and its owner link. owner_id defaults to the caller.
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePetRequest true "Pet"
// @Success 201 {object} queries.PetView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pets [post]
func (h *PetHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errPrincipalMissing, "Unauthorized", nil)
		return
	}
	var req reqdto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	attrs, err := req.ToAttributes()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), principal, req.OwnerID, attrs)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
		case errs.Is(err, commands.ErrInvalidPet):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pet data", nil)
		case errs.Is(err, commands.ErrOwnerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Owner not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create pet", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Delete pet
// @Tags pets
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /pets/{id} [delete]
func (h *PetHandler) Delete(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errPrincipalMissing, "Unauthorized", nil)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), principal, id); err != nil {
		if errs.Is(err, queries.ErrPetNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Pet not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
