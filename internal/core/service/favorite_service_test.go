package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

func newFavoriteSvc(favs *stubFavoriteRepo, guard SubmissionGuard) *FavoriteService {
	return NewFavoriteService(favs, seededMovies(), guard, discardLogger)
}

func TestFavoriteService_Add_Idempotent(t *testing.T) {
	favs := &stubFavoriteRepo{}
	svc := newFavoriteSvc(favs, newStubGuard())

	added, err := svc.Add(context.Background(), "u1", "m1")
	if err != nil || !added {
		t.Fatalf("first add: added=%v err=%v", added, err)
	}

	added, err = svc.Add(context.Background(), "u1", "m1")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if added {
		t.Fatalf("second add must be a no-op")
	}
	if len(favs.items) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(favs.items))
	}
}

func TestFavoriteService_Add_UnknownMovie(t *testing.T) {
	favs := &stubFavoriteRepo{}
	svc := newFavoriteSvc(favs, nil)

	if _, err := svc.Add(context.Background(), "u1", "nope"); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
	if len(favs.items) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestFavoriteService_Add_GuardHeldIsNoop(t *testing.T) {
	favs := &stubFavoriteRepo{}
	guard := newStubGuard()
	guard.held["favorite:u1:m1"] = true
	svc := newFavoriteSvc(favs, guard)

	added, err := svc.Add(context.Background(), "u1", "m1")
	if err != nil || added {
		t.Fatalf("expected no-op while guard is held, got added=%v err=%v", added, err)
	}
	if len(favs.items) != 0 {
		t.Fatalf("nothing should be stored while guard is held")
	}

	// The holder gave up without inserting; a retry must store the favorite.
	delete(guard.held, "favorite:u1:m1")
	added, err = svc.Add(context.Background(), "u1", "m1")
	if err != nil || !added {
		t.Fatalf("expected retry to add, got added=%v err=%v", added, err)
	}
}

func TestFavoriteService_Add_GuardFailureProceeds(t *testing.T) {
	favs := &stubFavoriteRepo{}
	guard := newStubGuard()
	guard.acquireErr = errStoreDown
	svc := newFavoriteSvc(favs, guard)

	added, err := svc.Add(context.Background(), "u1", "m1")
	if err != nil || !added {
		t.Fatalf("expected add to proceed without guard, got added=%v err=%v", added, err)
	}
}

func TestFavoriteService_Add_ReleasesGuard(t *testing.T) {
	guard := newStubGuard()
	svc := newFavoriteSvc(&stubFavoriteRepo{}, guard)

	_, _ = svc.Add(context.Background(), "u1", "m1")
	if len(guard.held) != 0 {
		t.Fatalf("guard must be released, still held: %v", guard.held)
	}
	if len(guard.released) != 1 {
		t.Fatalf("expected 1 release, got %d", len(guard.released))
	}
}

func TestFavoriteService_Add_RaceLostIsNoop(t *testing.T) {
	favs := &stubFavoriteRepo{createErr: domain.ErrAlreadyFavorited}
	svc := newFavoriteSvc(favs, nil)

	added, err := svc.Add(context.Background(), "u1", "m1")
	if err != nil || added {
		t.Fatalf("expected duplicate insert to be a no-op, got added=%v err=%v", added, err)
	}
}

func TestFavoriteService_List_NewestFirst(t *testing.T) {
	now := time.Now()
	favs := &stubFavoriteRepo{items: []*domain.Favorite{
		{ID: "f1", UserID: "u1", MovieID: "m2", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "f2", UserID: "u1", MovieID: "m4", CreatedAt: now},
		{ID: "f3", UserID: "u2", MovieID: "m1", CreatedAt: now},
		{ID: "f4", UserID: "u1", MovieID: "m1", CreatedAt: now.Add(-time.Hour)},
	}}
	svc := newFavoriteSvc(favs, nil)

	movies, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := ids(movies), []string{"m4", "m1", "m2"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFavoriteService_List_Empty(t *testing.T) {
	svc := newFavoriteSvc(&stubFavoriteRepo{}, nil)

	movies, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movies == nil || len(movies) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", movies)
	}
}

func TestFavoriteService_Remove(t *testing.T) {
	favs := &stubFavoriteRepo{}
	svc := newFavoriteSvc(favs, nil)

	_, _ = svc.Add(context.Background(), "u1", "m1")

	if err := svc.Remove(context.Background(), "u1", "m1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(favs.items) != 0 {
		t.Fatalf("favorite not removed")
	}

	if err := svc.Remove(context.Background(), "u1", "m1"); !errors.Is(err, domain.ErrFavoriteNotFound) {
		t.Fatalf("expected ErrFavoriteNotFound, got %v", err)
	}
}
