package ports

import (
	"context"
	"time"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

// RegisterInput carries the fields needed to open an account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Authenticate verifies a bearer token and loads its user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
