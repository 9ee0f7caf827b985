package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

var discardLogger = zerolog.Nop()

var errStoreDown = errors.New("store unavailable")

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[string]*domain.User
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// ---------------------------------------------------------------------------
// Movies
// ---------------------------------------------------------------------------

type stubMovieRepo struct {
	byID       map[string]*domain.Movie
	order      []string
	lastFilter domain.MovieFilter
	updateErr  error
	insertErr  error
}

func newStubMovieRepo(movies ...*domain.Movie) *stubMovieRepo {
	r := &stubMovieRepo{byID: make(map[string]*domain.Movie)}
	for _, m := range movies {
		r.add(m)
	}
	return r
}

func (r *stubMovieRepo) add(m *domain.Movie) {
	clone := *m
	r.byID[m.ID] = &clone
	r.order = append(r.order, m.ID)
}

// List mirrors the Mongo query: case-insensitive substring on title or
// description, exact genre membership.
func (r *stubMovieRepo) List(_ context.Context, f domain.MovieFilter) ([]*domain.Movie, error) {
	r.lastFilter = f
	out := make([]*domain.Movie, 0)
	for _, id := range r.order {
		m := r.byID[id]
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(m.Title), q) && !strings.Contains(strings.ToLower(m.Description), q) {
				continue
			}
		}
		if f.Genre != "" && !contains(m.Genre, f.Genre) {
			continue
		}
		clone := *m
		out = append(out, &clone)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (r *stubMovieRepo) FindByID(_ context.Context, id string) (*domain.Movie, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	clone := *m
	return &clone, nil
}

// FindByIDs returns matches sorted by id so callers cannot rely on input order.
func (r *stubMovieRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Movie, error) {
	out := make([]*domain.Movie, 0, len(ids))
	for _, id := range ids {
		if m, ok := r.byID[id]; ok {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubMovieRepo) Genres(_ context.Context) ([]string, error) {
	var out []string
	for _, id := range r.order {
		out = append(out, r.byID[id].Genre...)
	}
	return out, nil
}

func (r *stubMovieRepo) UpdateRating(_ context.Context, id string, avg float64, count int) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrMovieNotFound
	}
	m.RatingAvg = avg
	m.RatingCount = count
	return nil
}

func (r *stubMovieRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubMovieRepo) InsertMany(_ context.Context, movies []*domain.Movie) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	for _, m := range movies {
		r.add(m)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Favorites
// ---------------------------------------------------------------------------

type stubFavoriteRepo struct {
	items     []*domain.Favorite
	createErr error
}

func (r *stubFavoriteRepo) Find(_ context.Context, userID, movieID string) (*domain.Favorite, error) {
	for _, f := range r.items {
		if f.UserID == userID && f.MovieID == movieID {
			clone := *f
			return &clone, nil
		}
	}
	return nil, domain.ErrFavoriteNotFound
}

func (r *stubFavoriteRepo) Create(_ context.Context, fav *domain.Favorite) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, f := range r.items {
		if f.UserID == fav.UserID && f.MovieID == fav.MovieID {
			return domain.ErrAlreadyFavorited
		}
	}
	clone := *fav
	r.items = append(r.items, &clone)
	return nil
}

func (r *stubFavoriteRepo) ListByUser(_ context.Context, userID string, limit int) ([]*domain.Favorite, error) {
	var out []*domain.Favorite
	for _, f := range r.items {
		if f.UserID == userID {
			clone := *f
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubFavoriteRepo) Delete(_ context.Context, userID, movieID string) (bool, error) {
	for i, f := range r.items {
		if f.UserID == userID && f.MovieID == movieID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------------------------------------------------------------------------
// Watch history
// ---------------------------------------------------------------------------

type stubHistoryRepo struct {
	items     []*domain.WatchHistoryEntry
	lastLimit int
}

func (r *stubHistoryRepo) Upsert(_ context.Context, e *domain.WatchHistoryEntry) error {
	for _, existing := range r.items {
		if existing.UserID == e.UserID && existing.MovieID == e.MovieID {
			existing.WatchedAt = e.WatchedAt
			existing.Progress = e.Progress
			return nil
		}
	}
	clone := *e
	r.items = append(r.items, &clone)
	return nil
}

func (r *stubHistoryRepo) ListByUser(_ context.Context, userID string, limit int) ([]*domain.WatchHistoryEntry, error) {
	r.lastLimit = limit
	var out []*domain.WatchHistoryEntry
	for _, e := range r.items {
		if e.UserID == userID {
			clone := *e
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].WatchedAt.After(out[j].WatchedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Reviews
// ---------------------------------------------------------------------------

type stubReviewRepo struct {
	items     []*domain.Review
	ratingErr error
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) error {
	for _, existing := range r.items {
		if existing.UserID == review.UserID && existing.MovieID == review.MovieID {
			return domain.ErrAlreadyReviewed
		}
	}
	clone := *review
	r.items = append(r.items, &clone)
	return nil
}

func (r *stubReviewRepo) Exists(_ context.Context, userID, movieID string) (bool, error) {
	for _, existing := range r.items {
		if existing.UserID == userID && existing.MovieID == movieID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubReviewRepo) ListByMovie(_ context.Context, movieID string, limit int) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, existing := range r.items {
		if existing.MovieID == movieID {
			clone := *existing
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubReviewRepo) Ratings(_ context.Context, movieID string) ([]int, error) {
	if r.ratingErr != nil {
		return nil, r.ratingErr
	}
	var out []int
	for _, existing := range r.items {
		if existing.MovieID == movieID {
			out = append(out, existing.Rating)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Guard and tokens
// ---------------------------------------------------------------------------

type stubGuard struct {
	held       map[string]bool
	acquireErr error
	released   []string
}

func newStubGuard() *stubGuard {
	return &stubGuard{held: make(map[string]bool)}
}

func (g *stubGuard) Acquire(_ context.Context, scope, userID, movieID string) (bool, error) {
	if g.acquireErr != nil {
		return false, g.acquireErr
	}
	k := scope + ":" + userID + ":" + movieID
	if g.held[k] {
		return false, nil
	}
	g.held[k] = true
	return true, nil
}

func (g *stubGuard) Release(_ context.Context, scope, userID, movieID string) error {
	k := scope + ":" + userID + ":" + movieID
	delete(g.held, k)
	g.released = append(g.released, k)
	return nil
}

type stubTokens struct {
	verifyErr error
}

func (s *stubTokens) Issue(userID string) (string, time.Time, error) {
	return "token-" + userID, time.Now().Add(time.Hour), nil
}

func (s *stubTokens) Verify(token string) (string, error) {
	if s.verifyErr != nil {
		return "", s.verifyErr
	}
	if !strings.HasPrefix(token, "token-") {
		return "", domain.ErrMalformedToken
	}
	return strings.TrimPrefix(token, "token-"), nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func movie(id, title string, genres ...string) *domain.Movie {
	return &domain.Movie{ID: id, Title: title, Description: title + " description", Genre: genres}
}
