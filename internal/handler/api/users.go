package api

import (
	"net/http"

	reqdto "pet-resort-api/internal/handler/dto/request"
	resdto "pet-resort-api/internal/handler/dto/response"
	"pet-resort-api/internal/handler/httperr"
	"pet-resort-api/internal/pkg/config"
	"pet-resort-api/internal/pkg/cookie"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/commands"
	"pet-resort-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	authCmds commands.AuthCommands
	userCmds commands.UserCommands
	q        queries.UserQueries
	cookies  config.CookieConfig
}

func NewUserHandler(authCmds commands.AuthCommands, userCmds commands.UserCommands, q queries.UserQueries, cfg config.Config) *UserHandler {
	return &UserHandler{
		authCmds: authCmds,
		userCmds: userCmds,
		q:        q,
		cookies:  cfg.Cookie,
	}
}

// @Summary Register user
// @Description Create an account with the user role
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.authCmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidRegistration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration data", nil)
		case errs.Is(err, commands.ErrUserAlreadyExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Username or email already taken", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Registration failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Authenticate
// @Description Exchange username and password for an access token. The token is also set as an HttpOnly cookie.
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.AuthenticateRequest true "Credentials"
// @Success 200 {object} resdto.AuthenticateResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /users/authenticate [post]
func (h *UserHandler) Authenticate(c *gin.Context) {
	var req reqdto.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	// Malformed credentials are indistinguishable from wrong ones.
	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
		return
	}

	result, err := h.authCmds.Authenticate(c.Request.Context(), credentials)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Authentication failed", nil)
		return
	}

	cookie.SetAccessToken(c, h.cookies, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.UserView
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list users", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete user
// @Description Delete an account with its pets' owner links and reservations
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.userCmds.Delete(c.Request.Context(), id); err != nil {
		if errs.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
