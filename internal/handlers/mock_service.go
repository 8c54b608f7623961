package handlers

import (
	"context"
	"errors"
	"net/http"

	"todoapi/internal/models"
	"todoapi/internal/service"

	"github.com/gin-gonic/gin"
)

// errDBDown stands in for an unexpected storage failure.
var errDBDown = errors.New("db down")

// ---- Service Mocks ----

type mockAuth struct {
	registerUser  models.PublicUser
	registerToken string
	registerErr   error
	loginUser     models.PublicUser
	loginToken    string
	loginErr      error
	verifyID      int
	verifyErr     error

	lastRegisterEmail    string
	lastRegisterPassword string
	lastLoginEmail       string
	lastLoginPassword    string
	lastVerifyToken      string
}

func (m *mockAuth) Register(_ context.Context, email, password string) (models.PublicUser, string, error) {
	m.lastRegisterEmail = email
	m.lastRegisterPassword = password
	return m.registerUser, m.registerToken, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (models.PublicUser, string, error) {
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuth) VerifySession(token string) (int, error) {
	m.lastVerifyToken = token
	return m.verifyID, m.verifyErr
}

type mockTodos struct {
	page      service.Page
	todo      models.Todo
	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	lastOwnerID  int
	lastPage     int
	lastLimit    int
	lastID       int
	lastCreateIn service.CreateTodoInput
	lastUpdateIn service.UpdateTodoInput
	listCalls    int
	createCalls  int
	updateCalls  int
	deleteCalls  int
}

func (m *mockTodos) List(_ context.Context, ownerID, page, limit int) (service.Page, error) {
	m.listCalls++
	m.lastOwnerID = ownerID
	m.lastPage = page
	m.lastLimit = limit
	return m.page, m.listErr
}

func (m *mockTodos) GetByID(_ context.Context, id, ownerID int) (models.Todo, error) {
	m.lastID = id
	m.lastOwnerID = ownerID
	return m.todo, m.getErr
}

func (m *mockTodos) Create(_ context.Context, in service.CreateTodoInput, ownerID int) (models.Todo, error) {
	m.createCalls++
	m.lastCreateIn = in
	m.lastOwnerID = ownerID
	return m.todo, m.createErr
}

func (m *mockTodos) Update(_ context.Context, id int, in service.UpdateTodoInput, ownerID int) (models.Todo, error) {
	m.updateCalls++
	m.lastID = id
	m.lastUpdateIn = in
	m.lastOwnerID = ownerID
	return m.todo, m.updateErr
}

func (m *mockTodos) Delete(_ context.Context, id, ownerID int) (models.Todo, error) {
	m.deleteCalls++
	m.lastID = id
	m.lastOwnerID = ownerID
	return m.todo, m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, CookieOptions{})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: authCookieName, Value: token}
}
