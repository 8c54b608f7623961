package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// requestLogger tags every request with an id and logs method, path,
// status and duration once the handler chain finishes.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	reqID := uuid.NewString()
	c.Writer.Header().Set(requestIDHeader, reqID)

	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
