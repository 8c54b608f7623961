package service

import (
	"context"
	"time"

	"todoapi/internal/models"
	"todoapi/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, email, password string) (models.PublicUser, string, error)
	Login(ctx context.Context, email, password string) (models.PublicUser, string, error)
	VerifySession(accessToken string) (int, error)
}

// Todos exposes ownership-scoped CRUD and pagination over a user's items.
type Todos interface {
	List(ctx context.Context, ownerID, page, limit int) (Page, error)
	GetByID(ctx context.Context, id, ownerID int) (models.Todo, error)
	Create(ctx context.Context, in CreateTodoInput, ownerID int) (models.Todo, error)
	Update(ctx context.Context, id int, in UpdateTodoInput, ownerID int) (models.Todo, error)
	Delete(ctx context.Context, id, ownerID int) (models.Todo, error)
}

// AuthConfig is the process-wide auth configuration, loaded once at startup
// and read-only afterwards.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Todos
}

// NewService wires the repository layer into concrete services. One Service
// is built at startup and shared by every request; it holds nothing but
// stateless collaborators and immutable configuration.
func NewService(repos *repository.Repository, cfg AuthConfig) *Service {
	hasher := NewPasswordHasher(cfg.BcryptCost)
	codec := NewTokenCodec(cfg.SigningKey, cfg.TokenTTL)
	return &Service{
		Authorization: NewAuthService(repos.Users, hasher, codec),
		Todos:         NewTodoService(repos.Todos),
	}
}
