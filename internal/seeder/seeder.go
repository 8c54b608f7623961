package seeder

import (
	"context"
	"fmt"
	"math/rand"

	"todoapi/internal/logger"
	"todoapi/internal/repository"
	"todoapi/internal/service"
)

// Seeding modes accepted by Run.
const (
	ModeAll   = "all"
	ModeUsers = "users"
	ModeTodos = "todos"
	ModeClean = "clean"
)

// demoPassword is shared by all seeded accounts.
const demoPassword = "password123"

var demoEmails = []string{
	"alice@example.com",
	"bob@example.com",
	"carol@example.com",
}

type todoTemplate struct {
	title       string
	description string
	completed   bool
}

var todoTemplates = []todoTemplate{
	{"Buy groceries", "Milk, eggs, bread and coffee", false},
	{"Write weekly report", "Summarize progress for the team sync", true},
	{"Book dentist appointment", "", false},
	{"Water the plants", "The ficus needs extra attention", true},
	{"Renew passport", "Check photo requirements first", false},
	{"Clean the garage", "Sort boxes, donate old tools", false},
	{"Plan weekend trip", "Compare train and car options", false},
	{"Pay electricity bill", "", true},
	{"Read Go proposal drafts", "Catch up on the generics follow-ups", false},
	{"Fix leaking tap", "Buy a new washer on the way home", false},
}

// Seeder populates the store with demo accounts and todos for local
// development. It goes through the same repositories and hasher the server
// uses, so seeded credentials work against the real login flow.
type Seeder struct {
	users  repository.Users
	todos  repository.Todos
	hasher *service.PasswordHasher
	log    *logger.Logger
}

func New(repos *repository.Repository, hasher *service.PasswordHasher, log *logger.Logger) *Seeder {
	return &Seeder{users: repos.Users, todos: repos.Todos, hasher: hasher, log: log}
}

// Run executes one seeding mode: all, users, todos or clean.
func (s *Seeder) Run(ctx context.Context, mode string) error {
	switch mode {
	case ModeUsers:
		return s.seedUsers(ctx)
	case ModeTodos:
		return s.seedTodos(ctx)
	case ModeClean:
		return s.clean(ctx)
	case ModeAll:
		if err := s.clean(ctx); err != nil {
			return err
		}
		if err := s.seedUsers(ctx); err != nil {
			return err
		}
		return s.seedTodos(ctx)
	default:
		return fmt.Errorf("unknown seed mode %q (want all|users|todos|clean)", mode)
	}
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	digest, err := s.hasher.Hash(demoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	for _, email := range demoEmails {
		existing, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			s.log.Infow("seed_user_skipped", "email", email)
			continue
		}
		u, err := s.users.Create(ctx, email, digest)
		if err != nil {
			return err
		}
		s.log.Infow("seed_user_created", "email", u.Email, "id", u.ID)
	}
	return nil
}

func (s *Seeder) seedTodos(ctx context.Context) error {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return fmt.Errorf("no users found; seed users first")
	}

	if err := s.todos.DeleteAll(ctx); err != nil {
		return err
	}

	total := 0
	for _, u := range users {
		// 3..8 todos per user, picked from shuffled templates.
		count := rand.Intn(6) + 3
		for _, idx := range rand.Perm(len(todoTemplates))[:count] {
			tpl := todoTemplates[idx]
			t, err := s.todos.Create(ctx, repository.TodoDraft{
				Title:       tpl.title,
				Description: tpl.description,
			}, u.ID)
			if err != nil {
				return err
			}
			if tpl.completed {
				done := true
				if _, err := s.todos.UpdateByID(ctx, t.ID, repository.TodoPatch{Completed: &done}); err != nil {
					return err
				}
			}
			total++
		}
		s.log.Infow("seed_todos_created", "email", u.Email, "count", count)
	}
	s.log.Infow("seed_todos_done", "total", total)
	return nil
}

func (s *Seeder) clean(ctx context.Context) error {
	if err := s.todos.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.users.DeleteAll(ctx); err != nil {
		return err
	}
	s.log.Infow("seed_clean_done")
	return nil
}
