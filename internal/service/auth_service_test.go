package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"todoapi/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn     func(email, hash string) (models.User, error)
	GetByEmailFn func(email string) (*models.User, error)

	createCalls []struct {
		email string
		hash  string
	}
	getCalls []string
}

func (m *mockUserRepo) Create(_ context.Context, email, hash string) (models.User, error) {
	m.createCalls = append(m.createCalls, struct {
		email string
		hash  string
	}{email: email, hash: hash})
	return m.CreateFn(email, hash)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.getCalls = append(m.getCalls, email)
	return m.GetByEmailFn(email)
}

func (m *mockUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	return nil, nil
}

func (m *mockUserRepo) ListAll(_ context.Context) ([]models.User, error) { return nil, nil }

func (m *mockUserRepo) DeleteAll(_ context.Context) error { return nil }

func newTestAuthService(repo *mockUserRepo) *AuthService {
	return NewAuthService(repo, newTestHasher(), newTestCodec())
}

// --- Register tests ---

func TestAuthService_Register_Success(t *testing.T) {
	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) { return nil, nil },
		CreateFn: func(email, hash string) (models.User, error) {
			return models.User{ID: 42, Email: email, PasswordHash: hash, CreatedAt: time.Now()}, nil
		},
	}
	svc := newTestAuthService(mock)

	user, token, err := svc.Register(context.Background(), "alice@example.com", "s3cr3t")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID != 42 || user.Email != "alice@example.com" {
		t.Fatalf("unexpected public user: %+v", user)
	}

	// The stored digest is hashed, not the raw password.
	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	call := mock.createCalls[0]
	if call.hash == "s3cr3t" {
		t.Error("expected hashed password not equal to raw password")
	}
	if ok, err := newTestHasher().Verify("s3cr3t", call.hash); err != nil || !ok {
		t.Errorf("stored hash does not verify with original password: ok=%v err=%v", ok, err)
	}

	// The returned token is usable and encodes the new user's id.
	userID, err := newTestCodec().Verify(token)
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("token subject = %d, want 42", userID)
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) { return nil, nil },
		CreateFn: func(email, hash string) (models.User, error) {
			return models.User{ID: 1, Email: email}, nil
		},
	}
	svc := newTestAuthService(mock)

	if _, _, err := svc.Register(context.Background(), "  Alice@Example.COM ", "pw123"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if got := mock.getCalls[0]; got != "alice@example.com" {
		t.Fatalf("lookup used email %q, want normalized", got)
	}
	if got := mock.createCalls[0].email; got != "alice@example.com" {
		t.Fatalf("create used email %q, want normalized", got)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email}, nil
		},
		CreateFn: func(email, hash string) (models.User, error) {
			t.Fatal("Create should not be called for a duplicate email")
			return models.User{}, nil
		},
	}
	svc := newTestAuthService(mock)

	_, _, err := svc.Register(context.Background(), "alice@example.com", "pw123")
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(mock.createCalls))
	}
}

func TestAuthService_Register_EmptyInputs(t *testing.T) {
	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) { return nil, nil },
		CreateFn: func(email, hash string) (models.User, error) {
			t.Fatal("Create should not be called for invalid input")
			return models.User{}, nil
		},
	}
	svc := newTestAuthService(mock)

	if _, _, err := svc.Register(context.Background(), "   ", "pw123"); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty email: expected ErrValidation, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "bob@example.com", "  "); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty password: expected ErrValidation, got %v", err)
	}
}

// --- Login tests ---

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := newTestHasher().Hash("letmein")
	if err != nil {
		t.Fatalf("hash setup failed: %v", err)
	}
	stored := &models.User{ID: 7, Email: "diana@example.com", PasswordHash: hash}

	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			if email != "diana@example.com" {
				t.Fatalf("unexpected lookup email %q", email)
			}
			return stored, nil
		},
	}
	svc := newTestAuthService(mock)

	user, token, err := svc.Login(context.Background(), "diana@example.com", "letmein")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != 7 || user.Email != "diana@example.com" {
		t.Fatalf("unexpected public user: %+v", user)
	}
	userID, err := newTestCodec().Verify(token)
	if err != nil || userID != 7 {
		t.Fatalf("token does not verify to user 7: id=%d err=%v", userID, err)
	}
}

// Unknown email and wrong password must be the same error value, so their
// externally visible responses cannot differ.
func TestAuthService_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	hash, err := newTestHasher().Hash("correct-password")
	if err != nil {
		t.Fatalf("hash setup failed: %v", err)
	}

	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			if email == "alice@example.com" {
				return &models.User{ID: 1, Email: email, PasswordHash: hash}, nil
			}
			return nil, nil
		},
	}
	svc := newTestAuthService(mock)

	_, _, errWrongPassword := svc.Login(context.Background(), "alice@example.com", "wrong")
	_, _, errUnknownEmail := svc.Login(context.Background(), "nobody@example.com", "x")

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if !errors.Is(errUnknownEmail, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknownEmail)
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Fatalf("error messages differ: %q vs %q", errWrongPassword, errUnknownEmail)
	}
}

func TestAuthService_Login_RepoError(t *testing.T) {
	mock := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return nil, errors.New("db down")
		},
	}
	svc := newTestAuthService(mock)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "pw")
	if err == nil {
		t.Fatal("expected repo error, got nil")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("a storage failure must not masquerade as bad credentials")
	}
}

// --- VerifySession tests ---

func TestAuthService_VerifySession(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})

	token, err := newTestCodec().Issue(9)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	userID, err := svc.VerifySession(token)
	if err != nil {
		t.Fatalf("VerifySession returned error: %v", err)
	}
	if userID != 9 {
		t.Fatalf("expected user id 9, got %d", userID)
	}

	if _, err := svc.VerifySession("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
