package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	devicedomain "github.com/gridbits/enertrack/internal/device/domain"
	usagedomain "github.com/gridbits/enertrack/internal/usage/domain"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid_request")
)

// ErrorHandlingMiddleware maps domain sentinel errors onto HTTP responses.
// Every failure is reported verbatim to the caller; nothing is retryable.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case errors.Is(err, devicedomain.ErrAlreadyRegistered):
		return http.StatusConflict, errorPayload{Type: "already_registered", Message: "device already registered"}
	case errors.Is(err, devicedomain.ErrNotFound):
		return http.StatusNotFound, errorPayload{Type: "not_found", Message: "device not found"}
	case errors.Is(err, devicedomain.ErrNotOwner):
		return http.StatusForbidden, errorPayload{Type: "not_owner", Message: "caller is not the device owner"}
	case errors.Is(err, usagedomain.ErrInvalidAmount):
		return http.StatusBadRequest, errorPayload{Type: "invalid_amount", Message: "energy usage must be non-negative"}
	case errors.Is(err, devicedomain.ErrInvalidDeviceID),
		errors.Is(err, devicedomain.ErrInvalidDeviceType),
		errors.Is(err, devicedomain.ErrInvalidCaller),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{Type: "invalid_request", Message: err.Error()}
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, errorPayload{Type: "unauthorized", Message: "caller identity required"}
	default:
		return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: "internal server error"}
	}
}
