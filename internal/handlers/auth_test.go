package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todoapi/internal/models"
	"todoapi/internal/service"
)

func postJSON(r http.Handler, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set; headers: %v", name, w.Header())
	return nil
}

func TestAuthHandlers_RegisterSetsCookie(t *testing.T) {
	auth := &mockAuth{
		registerUser:  models.PublicUser{ID: 42, Email: "alice@example.com"},
		registerToken: "tok123",
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := postJSON(r, "/auth/register", `{"email":"alice@example.com","password":"pw"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}

	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["success"] != true {
		t.Fatalf("expected success envelope, got %s", w.Body.String())
	}
	user := m["data"].(map[string]any)["user"].(map[string]any)
	if user["email"] != "alice@example.com" || int(user["id"].(float64)) != 42 {
		t.Fatalf("unexpected user payload: %v", user)
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatal("password hash leaked into the response")
	}

	c := findCookie(t, w, authCookieName)
	if c.Value != "tok123" {
		t.Fatalf("cookie value = %q, want tok123", c.Value)
	}
	if !c.HttpOnly {
		t.Fatal("auth cookie must be HttpOnly")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Fatalf("cookie SameSite = %v, want Strict", c.SameSite)
	}
	if c.MaxAge != int(service.DefaultTokenTTL.Seconds()) {
		t.Fatalf("cookie max-age = %d, want %d", c.MaxAge, int(service.DefaultTokenTTL.Seconds()))
	}
}

func TestAuthHandlers_RegisterDuplicate(t *testing.T) {
	auth := &mockAuth{registerErr: service.ErrDuplicateUser}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/auth/register", `{"email":"alice@example.com","password":"pw"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400; body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), service.ErrDuplicateUser.Error()) {
		t.Fatalf("expected duplicate-user message, got %s", w.Body.String())
	}
}

func TestAuthHandlers_LoginSuccessAndFailure(t *testing.T) {
	auth := &mockAuth{
		loginUser:  models.PublicUser{ID: 7, Email: "u@example.com"},
		loginToken: "tok456",
	}
	r := newTestRouter(&service.Service{Authorization: auth})

	// success
	w := postJSON(r, "/auth/login", `{"email":"u@example.com","password":"pw"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	if c := findCookie(t, w, authCookieName); c.Value != "tok456" {
		t.Fatalf("cookie value = %q, want tok456", c.Value)
	}

	// bad credentials → 401 with the service's own unrevealing message
	auth.loginErr = service.ErrInvalidCredentials
	w = postJSON(r, "/auth/login", `{"email":"u@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401; body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), service.ErrInvalidCredentials.Error()) {
		t.Fatalf("expected invalid-credentials message, got %s", w.Body.String())
	}
}

func TestAuthHandlers_BadBody(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}})

	for _, path := range []string{"/auth/register", "/auth/login"} {
		w := postJSON(r, path, `{"email":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 for bad body, got %d", path, w.Code)
		}
	}
}

func TestAuthHandlers_LogoutClearsCookie(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}})

	w := postJSON(r, "/auth/logout", ``)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status=%d, body=%s", w.Code, w.Body.String())
	}
	c := findCookie(t, w, authCookieName)
	if c.Value != "" || c.MaxAge >= 0 {
		t.Fatalf("expected expired empty cookie, got value=%q max-age=%d", c.Value, c.MaxAge)
	}
}

func TestAuthHandlers_InternalErrorIsGeneric(t *testing.T) {
	auth := &mockAuth{registerErr: errDBDown}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/auth/register", `{"email":"a@b.c","password":"pw"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500; body=%s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "db down") {
		t.Fatalf("internal detail leaked to the caller: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "internal server error") {
		t.Fatalf("expected generic message, got %s", w.Body.String())
	}
}
