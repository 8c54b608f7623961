package service

import (
	"context"
	"fmt"
	"strings"

	"todoapi/internal/models"
	"todoapi/internal/repository"
)

// AuthService handles registration, login and session verification.
type AuthService struct {
	users  repository.Users
	hasher *PasswordHasher
	codec  *TokenCodec
}

func NewAuthService(users repository.Users, hasher *PasswordHasher, codec *TokenCodec) *AuthService {
	return &AuthService{users: users, hasher: hasher, codec: codec}
}

// normalizeEmail lowercases and trims the address so that at most one
// account can ever exist per email regardless of input casing.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account and returns its public projection plus a
// fresh session token.
func (s *AuthService) Register(ctx context.Context, email, password string) (models.PublicUser, string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return models.PublicUser{}, "", fmt.Errorf("%w: email is empty", ErrValidation)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return models.PublicUser{}, "", fmt.Errorf("look up email: %w", err)
	}
	if existing != nil {
		return models.PublicUser{}, "", ErrDuplicateUser
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return models.PublicUser{}, "", err
	}

	user, err := s.users.Create(ctx, email, digest)
	if err != nil {
		return models.PublicUser{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return models.PublicUser{}, "", err
	}
	return user.Public(), token, nil
}

// Login checks credentials and returns the account's public projection plus
// a fresh session token. An unknown email and a wrong password produce the
// identical error; there is no persistence side effect.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.PublicUser, string, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return models.PublicUser{}, "", fmt.Errorf("look up email: %w", err)
	}
	if user == nil {
		return models.PublicUser{}, "", ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return models.PublicUser{}, "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return models.PublicUser{}, "", ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return models.PublicUser{}, "", err
	}
	return user.Public(), token, nil
}

// VerifySession returns the user id a session token was issued for.
func (s *AuthService) VerifySession(accessToken string) (int, error) {
	return s.codec.Verify(accessToken)
}
