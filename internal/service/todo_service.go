package service

import (
	"context"
	"fmt"
	"strings"

	"todoapi/internal/models"
	"todoapi/internal/repository"
)

const (
	// DefaultPageLimit is the page size used when the caller supplies none.
	DefaultPageLimit = 50

	maxTitleLen = 255
)

// Page is one page of an owner's todos with pagination metadata.
type Page struct {
	Todos      []models.Todo `json:"todos"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	HasNext    bool          `json:"hasNext"`
	HasPrev    bool          `json:"hasPrev"`
}

// CreateTodoInput carries the caller-supplied fields of a new todo. The
// owner is never part of the input; it comes from the authenticated session.
type CreateTodoInput struct {
	Title       string
	Description string
}

// UpdateTodoInput is a partial update; nil fields are left untouched.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TodoService orchestrates ownership-scoped CRUD over the todo store. Every
// read and mutation is parameterized by the requesting owner; the service
// never touches a row by id alone.
type TodoService struct {
	todos repository.Todos
}

func NewTodoService(todos repository.Todos) *TodoService {
	return &TodoService{todos: todos}
}

// validateTitle enforces the one shape rule the core has to trust: a
// non-empty title of bounded length.
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(title) > maxTitleLen {
		return fmt.Errorf("%w: title must be at most %d characters", ErrValidation, maxTitleLen)
	}
	return nil
}

// List returns one page of the owner's todos, most recent first.
// Non-positive page/limit fall back to 1/DefaultPageLimit; out-of-range
// pages yield an empty slice with correct totals.
func (s *TodoService) List(ctx context.Context, ownerID, page, limit int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	items, total, err := s.todos.ListPage(ctx, ownerID, (page-1)*limit, limit)
	if err != nil {
		return Page{}, fmt.Errorf("list todos: %w", err)
	}

	totalPages := (total + limit - 1) / limit
	return Page{
		Todos:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}

// GetByID fetches a single todo scoped to its owner. A missing id and an
// id owned by someone else are both ErrNotFound.
func (s *TodoService) GetByID(ctx context.Context, id, ownerID int) (models.Todo, error) {
	todo, err := s.todos.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("get todo: %w", err)
	}
	if todo == nil {
		return models.Todo{}, ErrNotFound
	}
	return *todo, nil
}

// Create stores a new todo owned by the authenticated caller.
func (s *TodoService) Create(ctx context.Context, in CreateTodoInput, ownerID int) (models.Todo, error) {
	if err := validateTitle(in.Title); err != nil {
		return models.Todo{}, err
	}
	todo, err := s.todos.Create(ctx, repository.TodoDraft{
		Title:       in.Title,
		Description: in.Description,
	}, ownerID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

// Update re-checks ownership before writing, then applies the partial field
// set. The owner can never change through this path.
func (s *TodoService) Update(ctx context.Context, id int, in UpdateTodoInput, ownerID int) (models.Todo, error) {
	existing, err := s.GetByID(ctx, id, ownerID)
	if err != nil {
		return models.Todo{}, err
	}
	if in.Title != nil {
		if err := validateTitle(*in.Title); err != nil {
			return models.Todo{}, err
		}
	}
	if in.Title == nil && in.Description == nil && in.Completed == nil {
		return existing, nil
	}

	todo, err := s.todos.UpdateByID(ctx, id, repository.TodoPatch{
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
	})
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo: %w", err)
	}
	return todo, nil
}

// Delete re-checks ownership before removing the row and returns the
// deleted record's last-known state.
func (s *TodoService) Delete(ctx context.Context, id, ownerID int) (models.Todo, error) {
	if _, err := s.GetByID(ctx, id, ownerID); err != nil {
		return models.Todo{}, err
	}
	todo, err := s.todos.DeleteByID(ctx, id)
	if err != nil {
		return models.Todo{}, fmt.Errorf("delete todo: %w", err)
	}
	return todo, nil
}
