package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// authCookieName is the HTTP-only cookie the session token travels in.
const authCookieName = "auth-token"

// Single, shared credentials payload for both register and login.
type authCredentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		respondError(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// setAuthCookie attaches the session token as an HTTP-only cookie.
func (h *Handler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookieName, token, int(h.cookie.MaxAge.Seconds()), "/", "", h.cookie.Secure, true)
}

// clearAuthCookie expires the session cookie immediately.
func (h *Handler) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookieName, "", -1, "/", "", h.cookie.Secure, true)
}

// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      authCredentials  true  "email and password"
// @Success      201  {object}  response
// @Failure      400  {object}  response
// @Router       /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, token, err := h.services.Register(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_register_failed", "email", input.Email, "err", err)
		}
		h.respondServiceError(c, "auth_register_failed", err)
		return
	}

	h.setAuthCookie(c, token)
	respondData(c, http.StatusCreated, "User registered successfully", gin.H{"user": user})
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      authCredentials  true  "email and password"
// @Success      200  {object}  response
// @Failure      401  {object}  response
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, token, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_login_failed", "email", input.Email, "err", err)
		}
		h.respondServiceError(c, "auth_login_failed", err)
		return
	}

	h.setAuthCookie(c, token)
	respondData(c, http.StatusOK, "Login successful", gin.H{"user": user})
}

// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response
// @Router       /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	// Sessions are stateless; logout just discards the client-held token.
	h.clearAuthCookie(c)
	c.JSON(http.StatusOK, response{Success: true, Message: "Logged out successfully"})
}
