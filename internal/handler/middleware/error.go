package middleware

import (
	"log/slog"
	"net/http"

	"pet-resort-api/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the most recent public error when a handler recorded one
// without producing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if err := c.Errors.ByType(gin.ErrorTypePublic).Last(); err != nil {
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
