package repository

import (
	"context"
	"database/sql"

	"todoapi/internal/models"
)

// Users is the account store. GetByEmail/GetByID return (nil, nil) when no
// row matches.
type Users interface {
	Create(ctx context.Context, email, passwordHash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)

	// ListAll and DeleteAll are unscoped maintenance operations used only
	// by the seeder; they must never back a request path.
	ListAll(ctx context.Context) ([]models.User, error)
	DeleteAll(ctx context.Context) error
}

// TodoDraft carries the caller-supplied fields of a new todo. The owner is
// always passed separately and never appears here.
type TodoDraft struct {
	Title       string
	Description string
}

// TodoPatch is a partial update; nil fields are left untouched.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Todos is the owned-item store. GetByIDAndOwner filters by both id and
// owner in a single lookup and returns (nil, nil) when no row matches.
type Todos interface {
	ListPage(ctx context.Context, ownerID, skip, take int) ([]models.Todo, int, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID int) (*models.Todo, error)
	Create(ctx context.Context, draft TodoDraft, ownerID int) (models.Todo, error)
	UpdateByID(ctx context.Context, id int, patch TodoPatch) (models.Todo, error)
	DeleteByID(ctx context.Context, id int) (models.Todo, error)

	// DeleteAll is an unscoped maintenance operation for the seeder only.
	DeleteAll(ctx context.Context) error
}

type Repository struct {
	Users Users
	Todos Todos
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Todos: NewTodoRepository(db),
	}
}
