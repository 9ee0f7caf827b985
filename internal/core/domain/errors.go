package domain

import "errors"

// Validation errors (400).
var (
	ErrValidation      = errors.New("invalid input")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
)

// Conflict errors. The public API reports these as 400.
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrAlreadyReviewed = errors.New("you already reviewed this movie")

	// ErrAlreadyFavorited never reaches clients; adding a favorite twice is a no-op.
	ErrAlreadyFavorited = errors.New("already in favorites")
)

// Authentication errors (401).
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrExpiredToken       = errors.New("token expired")
	ErrMalformedToken     = errors.New("invalid token")
)

// Lookup errors (404).
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)
