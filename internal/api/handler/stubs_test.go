package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/screenhub/movie-catalog/internal/api/middleware"
	"github.com/screenhub/movie-catalog/internal/core/domain"
	"github.com/screenhub/movie-catalog/internal/core/ports"
)

var alice = &domain.User{ID: "u1", Email: "alice@example.com", Name: "Alice"}

// newContext builds an echo context for a JSON request. A non-nil user is
// injected as if the Auth middleware had run.
func newContext(method, target, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req = httptest.NewRequest(method, target, nil)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		middleware.SetUser(c, user)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
}

// --- Auth ---

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUnauthenticated
}

func authResult(user *domain.User) *ports.AuthResult {
	return &ports.AuthResult{AccessToken: "token123", ExpiresAt: time.Now().Add(time.Hour), User: user}
}

// --- Movies ---

type stubMovieService struct {
	movies     map[string]*domain.Movie
	genres     []string
	lastFilter domain.MovieFilter
}

func (s *stubMovieService) List(_ context.Context, f domain.MovieFilter) ([]*domain.Movie, error) {
	s.lastFilter = f
	out := make([]*domain.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		out = append(out, m)
	}
	return out, nil
}

func (s *stubMovieService) Get(_ context.Context, id string) (*domain.Movie, error) {
	m, ok := s.movies[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	return m, nil
}

func (s *stubMovieService) Genres(context.Context) ([]string, error) {
	return s.genres, nil
}

// --- Favorites ---

type stubFavoriteService struct {
	favs    map[string]bool
	movies  map[string]*domain.Movie
	lastUID string
}

func newStubFavoriteService() *stubFavoriteService {
	return &stubFavoriteService{
		favs:   make(map[string]bool),
		movies: map[string]*domain.Movie{"m1": {ID: "m1", Title: "The Matrix"}},
	}
}

func (s *stubFavoriteService) Add(_ context.Context, userID, movieID string) (bool, error) {
	s.lastUID = userID
	if _, ok := s.movies[movieID]; !ok {
		return false, domain.ErrMovieNotFound
	}
	if s.favs[movieID] {
		return false, nil
	}
	s.favs[movieID] = true
	return true, nil
}

func (s *stubFavoriteService) List(_ context.Context, userID string) ([]*domain.Movie, error) {
	s.lastUID = userID
	out := []*domain.Movie{}
	for id := range s.favs {
		out = append(out, s.movies[id])
	}
	return out, nil
}

func (s *stubFavoriteService) Remove(_ context.Context, userID, movieID string) error {
	s.lastUID = userID
	if !s.favs[movieID] {
		return domain.ErrFavoriteNotFound
	}
	delete(s.favs, movieID)
	return nil
}

// --- Watch history ---

type stubWatchHistoryService struct {
	last *ports.WatchHistoryInput
	err  error
}

func (s *stubWatchHistoryService) Record(_ context.Context, in ports.WatchHistoryInput) error {
	if s.err != nil {
		return s.err
	}
	s.last = &in
	return nil
}

func (s *stubWatchHistoryService) List(context.Context, string) ([]*domain.Movie, error) {
	return []*domain.Movie{{ID: "m1"}}, nil
}

// --- Reviews ---

type stubReviewService struct {
	last *ports.CreateReviewInput
	err  error
}

func (s *stubReviewService) List(_ context.Context, movieID string) ([]*domain.Review, error) {
	return []*domain.Review{{ID: "r1", MovieID: movieID, Rating: 5}}, nil
}

func (s *stubReviewService) Create(_ context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.last = &in
	return &domain.Review{ID: "r1", UserID: in.Author.ID, MovieID: in.MovieID, Rating: in.Rating}, nil
}

// --- Seeder ---

type stubSeeder struct {
	result *ports.SeedResult
}

func (s *stubSeeder) Seed(context.Context) (*ports.SeedResult, error) {
	return s.result, nil
}
