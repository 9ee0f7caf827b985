package service

import "context"

// SubmissionGuard abstracts the short-lived per-(user, movie) claim store (Redis).
type SubmissionGuard interface {
	Acquire(ctx context.Context, scope, userID, movieID string) (bool, error)
	Release(ctx context.Context, scope, userID, movieID string) error
}

const (
	scopeReview   = "review"
	scopeFavorite = "favorite"
)
