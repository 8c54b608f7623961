package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// userCtxKey is the Gin context key the authenticated user id is stored under.
const userCtxKey = "userId"

// sessionMiddleware authenticates the request from the auth-token cookie
// and stores the subject user id in the Gin context.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(authCookieName)
	if err != nil || token == "" {
		abortError(c, http.StatusUnauthorized, "authentication token required")
		return
	}

	uid, err := h.services.VerifySession(token)
	if err != nil {
		abortError(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	c.Set(userCtxKey, uid)
	c.Next()
}

// userID returns the authenticated user id attached by sessionMiddleware.
func userID(c *gin.Context) (int, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
