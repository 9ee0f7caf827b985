package handler

import (
	"time"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

// --- Request types ---

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type favoriteRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
}

type watchHistoryRequest struct {
	MovieID  string `json:"movie_id" validate:"required"`
	Progress int    `json:"progress"`
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment" validate:"max=2000"`
}

// --- Response types ---

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type genresResponse struct {
	Genres []string `json:"genres"`
}

type errorResponse struct {
	Error string `json:"error"`
}
