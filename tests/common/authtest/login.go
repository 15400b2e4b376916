//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "pet-resort-api/internal/handler/dto/request"
	resdto "pet-resort-api/internal/handler/dto/response"
	"pet-resort-api/internal/pkg/cookie"
	"pet-resort-api/tests/common/dbtest"
	"pet-resort-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// AuthenticateUser logs in through the API and returns the access token. The body and the
// cookie must carry the same token.
func AuthenticateUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/users/authenticate",
		reqdto.AuthenticateRequest{Username: username, Password: password}, "")

	var body resdto.AuthenticateResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	require.NotEmpty(t, body.AccessToken, "access token missing from body")

	c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, c, "access token cookie not set")
	require.Equal(t, body.AccessToken, c.Value)

	return body.AccessToken
}

// CreateAndAuthenticate inserts a user with dbtest.DefaultPassword and returns its id and token.
func CreateAndAuthenticate(t *testing.T, db dbtest.DBLike, router *gin.Engine, username, role string) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, username, role)
	return id, AuthenticateUser(t, router, username, dbtest.DefaultPassword)
}
