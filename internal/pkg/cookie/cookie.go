package cookie

import (
	"net/http"
	"time"

	"pet-resort-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// SetAccessToken stores the token as an HttpOnly cookie scoped to the API. A zero expiry
// (tokens without exp) makes it a session cookie.
func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    accessToken,
		Path:     "/api",
		Domain:   cfg.Domain,
		MaxAge:   int(expiry / time.Second),
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: sameSite(cfg.SameSite),
	})
}

// GetAccessToken returns "" when the cookie is absent.
func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func sameSite(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
