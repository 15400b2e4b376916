package api

import (
	"net/http"

	"pet-resort-api/internal/domain/reservation"
	reqdto "pet-resort-api/internal/handler/dto/request"
	"pet-resort-api/internal/handler/httperr"
	"pet-resort-api/internal/handler/middleware"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/commands"
	"pet-resort-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errPrincipalMissing = errs.New("principal missing from context")

type ReservationHandler struct {
	cmds         commands.ReservationCommands
	q            queries.ReservationQueries
	availability queries.AvailabilityQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, availability queries.AvailabilityQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary Create reservation
// @Description Book a resort day for a pet. owner_id defaults to the caller; only superusers may book for someone else.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errPrincipalMissing, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	request, err := req.ToDomain(principal.SubjectID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), &principal, request)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUnauthenticated):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
		case errs.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
		case errs.Is(err, commands.ErrInvalidReservation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation", nil)
		case errs.Is(err, commands.ErrPetNotOwned):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Pet does not belong to owner", nil)
		case errs.Is(err, commands.ErrNoCapacity):
			httperr.AbortWithError(c, http.StatusConflict, err, "Resort is fully booked for this date", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create reservation", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Recent reservations
// @Description Reservations dated within the last 30 days
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ReservationView
// @Failure 403 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListRecent(c *gin.Context) {
	views, err := h.q.ListRecent(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Reservations of a user
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param userId query string true "User ID"
// @Success 200 {array} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations/user [get]
func (h *ReservationHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid userId", nil)
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Reservations of a resort
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resort ID"
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Last day (YYYY-MM-DD)"
// @Success 200 {array} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations/resort/{id} [get]
func (h *ReservationHandler) ListByResort(c *gin.Context) {
	resortID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var q reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}
	period, err := q.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}
	views, err := h.q.ListByResort(c.Request.Context(), resortID, period)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get reservation
// @Description Owners see their own reservations, superusers see all
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
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
		if errs.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cancel reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errPrincipalMissing, "Unauthorized", nil)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), &principal, id); err != nil {
		if errs.Is(err, commands.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Check availability
// @Description Capacity, bookings and remaining slots for a resort on a date
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param resortId query string true "Resort ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Router /reservations/availability [get]
func (h *ReservationHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	resortID, err := uuid.Parse(q.ResortID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resortId", nil)
		return
	}
	date, err := reservation.ParseDate(q.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	view, err := h.availability.CheckAvailability(c.Request.Context(), date, resortID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to check availability", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}
