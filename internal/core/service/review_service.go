package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/screenhub/movie-catalog/internal/core/domain"
	"github.com/screenhub/movie-catalog/internal/core/ports"
	"github.com/screenhub/movie-catalog/internal/pkg/metrics"
)

// maxReviewsPerMovie bounds the public review listing.
const maxReviewsPerMovie = 1000

type ReviewService struct {
	reviews ports.ReviewRepository
	movies  ports.MovieRepository
	guard   SubmissionGuard
	log     zerolog.Logger
}

// NewReviewService returns a ReviewService. guard may be nil.
func NewReviewService(reviews ports.ReviewRepository, movies ports.MovieRepository, guard SubmissionGuard, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, movies: movies, guard: guard, log: log}
}

// List returns the reviews of a movie, newest first.
func (s *ReviewService) List(ctx context.Context, movieID string) ([]*domain.Review, error) {
	reviews, err := s.reviews.ListByMovie(ctx, movieID, maxReviewsPerMovie)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Create stores a review and then recomputes the movie's rating aggregate.
// Each author may review a movie once.
func (s *ReviewService) Create(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	if in.Author == nil {
		return nil, domain.ErrUnauthenticated
	}
	if _, err := s.movies.FindByID(ctx, in.MovieID); err != nil {
		return nil, err
	}
	if !domain.ValidRating(in.Rating) {
		return nil, domain.ErrInvalidRating
	}

	exists, err := s.reviews.Exists(ctx, in.Author.ID, in.MovieID)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyReviewed
	}

	release, ok := claim(ctx, s.guard, s.log, scopeReview, in.Author.ID, in.MovieID)
	if !ok {
		return nil, domain.ErrAlreadyReviewed
	}
	defer release()

	review := &domain.Review{
		ID:        uuid.NewString(),
		UserID:    in.Author.ID,
		UserName:  in.Author.Name,
		MovieID:   in.MovieID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, domain.ErrAlreadyReviewed) {
			return nil, err
		}
		return nil, fmt.Errorf("create review: %w", err)
	}
	metrics.ReviewsCreatedTotal.WithLabelValues(strconv.Itoa(review.Rating)).Inc()

	// The review is stored; a stale aggregate is repaired by the next review.
	if err := s.recomputeRating(ctx, in.MovieID); err != nil {
		s.log.Error().Err(err).Str("movie_id", in.MovieID).Msg("failed to update movie rating")
	}

	s.log.Info().
		Str("movie_id", in.MovieID).
		Str("user_id", in.Author.ID).
		Int("rating", in.Rating).
		Msg("review created")

	return review, nil
}

// recomputeRating re-reads every rating of the movie and stores the rounded
// mean and count.
func (s *ReviewService) recomputeRating(ctx context.Context, movieID string) (err error) {
	start := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.RatingRecomputeDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	}()

	ratings, err := s.reviews.Ratings(ctx, movieID)
	if err != nil {
		return fmt.Errorf("recompute rating: %w", err)
	}
	if err := s.movies.UpdateRating(ctx, movieID, domain.AverageRating(ratings), len(ratings)); err != nil {
		return fmt.Errorf("recompute rating: %w", err)
	}
	return nil
}
