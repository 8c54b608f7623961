package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"todoapi/internal/models"
)

// sqliteTimeLayout is the TIMESTAMP format SQLite stores and parses.
const sqliteTimeLayout = "2006-01-02 15:04:05"

type TodoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Ensure implementation of Todos interface at compile time.
var _ Todos = (*TodoRepository)(nil)

const todoColumns = "id, owner_id, title, description, completed, created_at"

const (
	insertTodoSQL = `INSERT INTO todos (owner_id, title, description, completed, created_at) VALUES (?, ?, ?, ?, ?)`

	// Most recent first; id breaks ties between rows created in the same second.
	selectTodoPageSQL = `SELECT ` + todoColumns + ` FROM todos WHERE owner_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	countTodosSQL     = `SELECT COUNT(*) FROM todos WHERE owner_id = ?`

	selectTodoByIDAndOwnerSQL = `SELECT ` + todoColumns + ` FROM todos WHERE id = ? AND owner_id = ?`

	deleteTodoSQL = `DELETE FROM todos WHERE id = ? RETURNING ` + todoColumns

	deleteAllTodosSQL = `DELETE FROM todos`
)

func scanTodo(row interface{ Scan(dest ...any) error }) (models.Todo, error) {
	var (
		t    models.Todo
		desc sql.NullString
	)
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &desc, &t.Completed, &t.CreatedAt); err != nil {
		return models.Todo{}, err
	}
	if desc.Valid {
		t.Description = desc.String
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}

// descriptionArg maps an empty description to NULL.
func descriptionArg(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// ListPage returns one page of the owner's todos plus the owner's total count.
func (r *TodoRepository) ListPage(ctx context.Context, ownerID, skip, take int) ([]models.Todo, int, error) {
	rows, err := r.db.QueryContext(ctx, selectTodoPageSQL, ownerID, take, skip)
	if err != nil {
		return nil, 0, fmt.Errorf("select todo page owner=%d: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Todo, 0, take)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan todo row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate todo rows: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countTodosSQL, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count todos owner=%d: %w", ownerID, err)
	}
	return out, total, nil
}

// GetByIDAndOwner fetches a todo scoped to its owner in a single lookup.
// Returns (nil, nil) when no row matches either because the id does not
// exist or because it belongs to someone else.
func (r *TodoRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int) (*models.Todo, error) {
	t, err := scanTodo(r.db.QueryRowContext(ctx, selectTodoByIDAndOwnerSQL, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select todo id=%d owner=%d: %w", id, ownerID, err)
	}
	return &t, nil
}

// Create inserts a new todo owned by ownerID and returns the stored record.
func (r *TodoRepository) Create(ctx context.Context, draft TodoDraft, ownerID int) (models.Todo, error) {
	createdAt := time.Now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx, insertTodoSQL,
		ownerID, draft.Title, descriptionArg(draft.Description), false, createdAt.Format(sqliteTimeLayout))
	if err != nil {
		return models.Todo{}, fmt.Errorf("insert todo owner=%d: %w", ownerID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Todo{}, fmt.Errorf("get last insert id for todo owner=%d: %w", ownerID, err)
	}
	return models.Todo{
		ID:          int(lastID),
		OwnerID:     ownerID,
		Title:       draft.Title,
		Description: draft.Description,
		Completed:   false,
		CreatedAt:   createdAt,
	}, nil
}

// UpdateByID applies the non-nil fields of patch and returns the updated
// row. The caller is responsible for ownership checks; owner_id itself is
// never part of the SET clause.
func (r *TodoRepository) UpdateByID(ctx context.Context, id int, patch TodoPatch) (models.Todo, error) {
	var (
		sets []string
		args []any
	)
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, descriptionArg(*patch.Description))
	}
	if patch.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *patch.Completed)
	}
	if len(sets) == 0 {
		return models.Todo{}, fmt.Errorf("update todo id=%d: empty patch", id)
	}

	q := "UPDATE todos SET " + strings.Join(sets, ", ") + " WHERE id = ? RETURNING " + todoColumns
	args = append(args, id)

	t, err := scanTodo(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo id=%d: %w", id, err)
	}
	return t, nil
}

// DeleteByID removes a todo and returns its last-known state.
func (r *TodoRepository) DeleteByID(ctx context.Context, id int) (models.Todo, error) {
	t, err := scanTodo(r.db.QueryRowContext(ctx, deleteTodoSQL, id))
	if err != nil {
		return models.Todo{}, fmt.Errorf("delete todo id=%d: %w", id, err)
	}
	return t, nil
}

// DeleteAll removes every todo. Unscoped; seeder maintenance only.
func (r *TodoRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteAllTodosSQL); err != nil {
		return fmt.Errorf("delete all todos: %w", err)
	}
	return nil
}
