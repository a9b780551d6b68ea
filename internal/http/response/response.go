// Package response writes the API's JSON envelopes. Errors are a flat
// object with a single message field, matching what the editor expects.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brainzones/strategy-studio-backend/internal/platform/apierr"
)

type messageBody struct {
	Message string `json:"message"`
}

func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, messageBody{Message: msg})
}

// Error maps an error to its HTTP status. Errors that carry no status are
// treated as internal.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "an unknown server error occurred"
	if err != nil {
		msg = err.Error()
	}
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		status = apiErr.Status
	}
	c.JSON(status, messageBody{Message: msg})
}

// BadRequest reports a malformed or unparseable request body.
func BadRequest(c *gin.Context, err error) {
	msg := "invalid request body"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusBadRequest, messageBody{Message: msg})
}
