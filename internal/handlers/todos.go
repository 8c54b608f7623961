package handlers

import (
	"net/http"
	"strconv"

	"todoapi/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidID    = "invalid todo ID"
	errInvalidPage  = "invalid 'page'; expected a positive integer"
	errInvalidLimit = "invalid 'limit'; expected a positive integer"
)

type createTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// pathID parses the :id path parameter, answering 400 on garbage.
// Returns false if the request was already handled.
func (h *Handler) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, errInvalidID)
		return 0, false
	}
	return id, true
}

// positiveQueryInt parses an optional positive-integer query value. An
// absent value yields def; a present but non-numeric or < 1 value is an
// error rather than being silently coerced.
func positiveQueryInt(c *gin.Context, name string, def int) (int, error) {
	qs := c.Query(name)
	if qs == "" {
		return def, nil
	}
	n, err := strconv.Atoi(qs)
	if err != nil || n < 1 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

// @Summary      List todos
// @Description  Returns one page of the caller's todos, most recent first.
// @Tags         todos
// @Produce      json
// @Param        page   query  int  false  "Page number (default 1)"
// @Param        limit  query  int  false  "Page size (default 50)"
// @Success      200  {object}  response
// @Failure      400  {object}  response
// @Failure      401  {object}  response
// @Router       /todos [get]
// @Security     CookieAuth
func (h *Handler) listTodos(c *gin.Context) {
	ownerID, ok := userID(c)
	if !ok {
		abortError(c, http.StatusUnauthorized, "authentication token required")
		return
	}

	page, err := positiveQueryInt(c, "page", 1)
	if err != nil {
		respondError(c, http.StatusBadRequest, errInvalidPage)
		return
	}
	limit, err := positiveQueryInt(c, "limit", service.DefaultPageLimit)
	if err != nil {
		respondError(c, http.StatusBadRequest, errInvalidLimit)
		return
	}

	result, err := h.services.List(c.Request.Context(), ownerID, page, limit)
	if err != nil {
		h.respondServiceError(c, "todos_list_failed", err)
		return
	}
	respondData(c, http.StatusOK, "", result)
}

// @Summary      Get a todo
// @Tags         todos
// @Produce      json
// @Param        id  path  int  true  "Todo ID"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /todos/{id} [get]
// @Security     CookieAuth
func (h *Handler) getTodo(c *gin.Context) {
	ownerID, ok := userID(c)
	if !ok {
		abortError(c, http.StatusUnauthorized, "authentication token required")
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	todo, err := h.services.GetByID(c.Request.Context(), id, ownerID)
	if err != nil {
		h.respondServiceError(c, "todos_get_failed", err)
		return
	}
	respondData(c, http.StatusOK, "", gin.H{"todo": todo})
}

// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        todo  body  createTodoRequest  true  "title and optional description"
// @Success      201  {object}  response
// @Failure      400  {object}  response
// @Router       /todos [post]
// @Security     CookieAuth
func (h *Handler) createTodo(c *gin.Context) {
	ownerID, ok := userID(c)
	if !ok {
		abortError(c, http.StatusUnauthorized, "authentication token required")
		return
	}

	var input createTodoRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	// The owner always comes from the session; any owner field in the body
	// is ignored by construction.
	todo, err := h.services.Create(c.Request.Context(), service.CreateTodoInput{
		Title:       input.Title,
		Description: input.Description,
	}, ownerID)
	if err != nil {
		h.respondServiceError(c, "todos_create_failed", err)
		return
	}
	respondData(c, http.StatusCreated, "Todo created successfully", gin.H{"todo": todo})
}

// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "Todo ID"
// @Param        todo  body  updateTodoRequest  true  "fields to change"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /todos/{id} [put]
// @Security     CookieAuth
func (h *Handler) updateTodo(c *gin.Context) {
	ownerID, ok := userID(c)
	if !ok {
		abortError(c, http.StatusUnauthorized, "authentication token required")
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var input updateTodoRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	todo, err := h.services.Update(c.Request.Context(), id, service.UpdateTodoInput{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
	}, ownerID)
	if err != nil {
		h.respondServiceError(c, "todos_update_failed", err)
		return
	}
	respondData(c, http.StatusOK, "Todo updated successfully", gin.H{"todo": todo})
}

// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        id  path  int  true  "Todo ID"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /todos/{id} [delete]
// @Security     CookieAuth
func (h *Handler) deleteTodo(c *gin.Context) {
	ownerID, ok := userID(c)
	if !ok {
		abortError(c, http.StatusUnauthorized, "authentication token required")
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	todo, err := h.services.Delete(c.Request.Context(), id, ownerID)
	if err != nil {
		h.respondServiceError(c, "todos_delete_failed", err)
		return
	}
	respondData(c, http.StatusOK, "Todo deleted successfully", gin.H{"todo": todo})
}
