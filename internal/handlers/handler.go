package handlers

import (
	"net/http"
	"time"

	"todoapi/internal/logger"
	"todoapi/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// CookieOptions controls the session cookie attributes the handlers emit.
type CookieOptions struct {
	MaxAge time.Duration // lifetime of the auth cookie; defaults to the token TTL
	Secure bool          // true in production so the cookie is HTTPS-only
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cookie   CookieOptions
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cookie CookieOptions) *Handler {
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = service.DefaultTokenTTL
	}
	return &Handler{services: services, log: log, cookie: cookie}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Todo endpoints (protected)
	h.registerTodoRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/logout", h.logout)
	}
}

func (h *Handler) registerTodoRoutes(r *gin.Engine) {
	todos := r.Group("/todos", h.sessionMiddleware)
	{
		todos.GET("", h.listTodos)
		todos.GET("/:id", h.getTodo)
		todos.POST("", h.createTodo)
		todos.PUT("/:id", h.updateTodo)
		todos.DELETE("/:id", h.deleteTodo)
	}
}

// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
