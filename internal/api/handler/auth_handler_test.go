package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NoBdr07/plateforme-owod/internal/auth"
	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password, firstname, lastname string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	sessionFn  func(ctx context.Context, userID string) (*ports.SessionInfo, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password, firstname, lastname string) (*domain.User, error) {
	return s.registerFn(ctx, email, password, firstname, lastname)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Session(ctx context.Context, userID string) (*ports.SessionInfo, error) {
	return s.sessionFn(ctx, userID)
}

func newAuthTestHandler(stub *stubAuthService) *AuthHandler {
	codec := auth.NewCodec([]byte("test-secret"), 24*time.Hour)
	cookies := auth.CookiePolicy{Name: "jwt", Secure: true, CrossSite: true}
	return NewAuthHandler(stub, codec, cookies)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == "jwt" {
			return cookie
		}
	}
	t.Fatal("no jwt cookie in response")
	return nil
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "sup3r-secret" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", &domain.User{ID: "u1", Email: email}, nil
		},
		sessionFn: func(_ context.Context, userID string) (*ports.SessionInfo, error) {
			return &ports.SessionInfo{UserID: userID, Roles: []string{"ROLE_USER"}}, nil
		},
	}
	handler := newAuthTestHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","password":"sup3r-secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookie(t, rec)
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value %q", cookie.Value)
	}
	if !cookie.HttpOnly || !cookie.Secure {
		t.Fatal("session cookie must be HttpOnly and Secure")
	}
	if cookie.MaxAge != 86400 {
		t.Fatalf("expected max-age 86400, got %d", cookie.MaxAge)
	}
	if strings.Contains(rec.Body.String(), "signed-token") {
		t.Fatal("token leaked into the response body")
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserNotFound
		},
	}
	handler := newAuthTestHandler(stub)

	body := strings.NewReader(`{"email":"ghost@example.com","password":"whatever"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Unknown account and wrong password must be indistinguishable.
	err := handler.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	res := rec.Result()
	defer res.Body.Close()
	if len(res.Cookies()) != 0 {
		t.Fatal("cookie set on failed login")
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e := echo.New()
	handler := newAuthTestHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookie(t, rec)
	if cookie.Value != "" {
		t.Fatalf("expected empty cookie value, got %q", cookie.Value)
	}
	if cookie.MaxAge >= 0 && cookie.MaxAge != 0 {
		t.Fatalf("expected clearing max-age, got %d", cookie.MaxAge)
	}
	header := rec.Header().Get("Set-Cookie")
	if !strings.Contains(header, "Max-Age=0") {
		t.Fatalf("expected Max-Age=0 on the wire, got %q", header)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		registerFn: func(_ context.Context, email, password, firstname, lastname string) (*domain.User, error) {
			if email != "alice@example.com" || firstname != "Alice" || lastname != "Martin" {
				t.Fatalf("unexpected args: %s %s %s", email, firstname, lastname)
			}
			return &domain.User{ID: "u1", Email: email, Firstname: firstname, Lastname: lastname, Roles: []domain.Role{domain.RoleUser}}, nil
		},
	}
	handler := newAuthTestHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","password":"sup3r-secret","firstname":"Alice","lastname":"Martin"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") && strings.Contains(rec.Body.String(), "sup3r-secret") {
		t.Fatal("password leaked into the response")
	}
}

func TestAuthHandler_Me_RequiresPrincipal(t *testing.T) {
	e := echo.New()
	handler := newAuthTestHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Me_ReturnsSession(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		sessionFn: func(_ context.Context, userID string) (*ports.SessionInfo, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return &ports.SessionInfo{UserID: userID, Roles: []string{"ROLE_USER"}, AccountType: domain.AccountDesigner}, nil
		},
	}
	handler := newAuthTestHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	principal := auth.Principal{SubjectID: "u1", Roles: []domain.Role{domain.RoleUser}}
	req = req.WithContext(auth.WithPrincipal(req.Context(), principal))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ROLE_USER") {
		t.Fatalf("session payload missing authorities: %s", rec.Body.String())
	}
}
