package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultGuardTTL = 10 * time.Second

// SubmissionGuard serialises create requests for the same (user, movie) pair.
// Key format: guard:<scope>:<user_id>:<movie_id>
type SubmissionGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSubmissionGuard wraps client. A non-positive ttl uses defaultGuardTTL.
func NewSubmissionGuard(client *redis.Client, ttl time.Duration) *SubmissionGuard {
	if ttl <= 0 {
		ttl = defaultGuardTTL
	}
	return &SubmissionGuard{client: client, ttl: ttl}
}

// Acquire claims the pair for scope. It returns false when another request holds it.
// The claim expires after the guard TTL even if Release is never called.
func (g *SubmissionGuard) Acquire(ctx context.Context, scope, userID, movieID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, key(scope, userID, movieID), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("guard acquire: %w", err)
	}
	return ok, nil
}

// Release drops the claim taken by Acquire.
func (g *SubmissionGuard) Release(ctx context.Context, scope, userID, movieID string) error {
	return g.client.Del(ctx, key(scope, userID, movieID)).Err()
}

func key(scope, userID, movieID string) string {
	return fmt.Sprintf("guard:%s:%s:%s", scope, userID, movieID)
}
