package httperr

import (
	"pet-resort-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the body of every non-2xx reply: {"error":{"message":...}}.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError replies with msg and keeps err on the gin context so the
// request logger can report the cause. A nil err is recorded as msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}
	resp := NewResponse(status, msg, detail)

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
