package handlers

import (
	"errors"
	"net/http"

	"todoapi/internal/service"

	"github.com/gin-gonic/gin"
)

// response is the envelope every endpoint answers with.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, response{Success: true, Message: message, Data: data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, response{Success: false, Error: msg})
}

func abortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, response{Success: false, Error: msg})
}

// statusForError maps a domain error to an HTTP status and an outward-safe
// message. Unknown errors become a generic 500: internal detail never
// reaches the caller.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrDuplicateUser):
		return http.StatusBadRequest, service.ErrDuplicateUser.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, service.ErrInvalidCredentials.Error()
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, service.ErrInvalidToken.Error()
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, service.ErrNotFound.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// respondServiceError writes the mapped error response and logs internal
// failures with full detail.
func (h *Handler) respondServiceError(c *gin.Context, event string, err error) {
	status, msg := statusForError(err)
	if h.log != nil && status == http.StatusInternalServerError {
		h.log.Errorw(event, "err", err)
	}
	respondError(c, status, msg)
}
