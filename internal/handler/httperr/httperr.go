package httperr

import (
	"net/http"

	"course-enrollment/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Mapping translates a sentinel error into a status and public message.
type Mapping struct {
	Target  error
	Status  int
	Message string
}

// AbortWithError records err on the context for ErrorHandler and writes the
// public response.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortMapped uses the first mapping whose target matches err; anything else
// is a 500.
func AbortMapped(c *gin.Context, err error, mappings ...Mapping) {
	for _, m := range mappings {
		if errs.Is(err, m.Target) {
			AbortWithError(c, m.Status, err, m.Message, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
