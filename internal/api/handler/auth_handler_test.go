package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/screenhub/movie-catalog/internal/core/domain"
	"github.com/screenhub/movie-catalog/internal/core/ports"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.Email != "alice@example.com" || in.Password != "secret" || in.Name != "Alice" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return authResult(alice), nil
		},
	}
	c, rec := newContext(http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"secret","name":"Alice"}`, nil)

	if err := NewAuthHandler(stub).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	decode(t, rec, &resp)
	if resp["access_token"] != "token123" || resp["token_type"] != "bearer" {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" || user["id"] != "u1" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	c, _ := newContext(http.MethodPost, "/api/auth/register",
		`{"email":"bob@example.com","password":"x","name":"Bob"}`, nil)

	if err := NewAuthHandler(stub).Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	for _, body := range []string{
		"not-json",
		`{"email":"not-an-email","password":"x","name":"Bob"}`,
		`{"email":"bob@example.com","name":"Bob"}`,
	} {
		c, _ := newContext(http.MethodPost, "/api/auth/register", body, nil)

		err := NewAuthHandler(stub).Register(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return authResult(alice), nil
		},
	}
	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret"}`, nil)

	if err := NewAuthHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	decode(t, rec, &resp)
	if resp.AccessToken != "token123" || resp.User == nil || resp.User.ID != "u1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	c, _ := newContext(http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"bad"}`, nil)

	if err := NewAuthHandler(stub).Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/auth/me", "", alice)

	if err := NewAuthHandler(&stubAuthService{}).Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var user domain.User
	decode(t, rec, &user)
	if user.ID != "u1" || user.Name != "Alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthHandler_Me_WithoutMiddleware(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/api/auth/me", "", nil)

	err := NewAuthHandler(&stubAuthService{}).Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
