package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/handler/httperr"
	"pet-resort-api/internal/pkg/cookie"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	authorizer usecase.Authorizer
}

const ctxPrincipalKey = "principal"

var errInvalidTarget = errors.New("invalid target identifier")

// TargetFunc extracts the user a self-or-admin route acts on.
type TargetFunc func(c *gin.Context) (uuid.UUID, bool)

func NewAuthMiddleware(authorizer usecase.Authorizer) *AuthMiddleware {
	return &AuthMiddleware{
		authorizer: authorizer,
	}
}

// RequireAuth verifies the bearer token (header first, then the access_token cookie) and
// stores the principal for the rest of the chain. Any failure aborts with 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrUnauthenticated, "Access token required", nil)
			return
		}

		principal, err := m.authorizer.Authenticate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxPrincipalKey, principal)
		c.Next()
	}
}

// RequirePolicy evaluates a target-less policy for the request's token.
func (m *AuthMiddleware) RequirePolicy(policy auth.Policy) gin.HandlerFunc {
	return m.authorize(policy, nil)
}

// RequireSelfOrAdmin evaluates PolicySelfOrAdmin against the user named by target.
func (m *AuthMiddleware) RequireSelfOrAdmin(target TargetFunc) gin.HandlerFunc {
	return m.authorize(auth.PolicySelfOrAdmin, target)
}

// RequireSelfOrSuperUser evaluates PolicySelfOrSuperUser against the user named by target.
func (m *AuthMiddleware) RequireSelfOrSuperUser(target TargetFunc) gin.HandlerFunc {
	return m.authorize(auth.PolicySelfOrSuperUser, target)
}

// authorize runs the token and the policy through the Authorizer in one step, so a denied
// request never reaches the handler with a principal set.
func (m *AuthMiddleware) authorize(policy auth.Policy, target TargetFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := uuid.Nil
		if target != nil {
			id, ok := target(c)
			if !ok {
				httperr.AbortWithError(c, http.StatusBadRequest, errInvalidTarget, "Invalid user ID", nil)
				return
			}
			targetID = id
		}

		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrUnauthenticated, "Access token required", nil)
			return
		}

		principal, err := m.authorizer.AuthorizeRequest(token, policy, targetID)
		if err != nil {
			if errs.Is(err, usecase.ErrUnauthenticated) {
				slog.Warn("Token validation failed in auth middleware", "error", err.Error())
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
				return
			}
			attrs := []any{"policy", policy.String(), "path", c.FullPath()}
			if known, ok := GetPrincipal(c); ok {
				attrs = append(attrs, "user_id", known.SubjectID.String(), "role", known.Role.String())
			}
			slog.Info("access denied", attrs...)
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
			return
		}

		c.Set(ctxPrincipalKey, principal)
		c.Next()
	}
}

// ParamTarget reads the target user from a path parameter.
func ParamTarget(name string) TargetFunc {
	return func(c *gin.Context) (uuid.UUID, bool) {
		id, err := uuid.Parse(c.Param(name))
		return id, err == nil
	}
}

// QueryTarget reads the target user from a query parameter.
func QueryTarget(name string) TargetFunc {
	return func(c *gin.Context) (uuid.UUID, bool) {
		id, err := uuid.Parse(c.Query(name))
		return id, err == nil
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(authHeader[len("Bearer "):]); token != "" {
			return token
		}
	}
	return cookie.GetAccessToken(c)
}

func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return auth.Principal{}, false
	}
	principal, ok := v.(auth.Principal)
	return principal, ok
}
