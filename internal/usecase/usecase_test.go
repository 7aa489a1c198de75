package usecase

import (
	"context"
	"testing"
	"time"

	"filmestop/internal/data/repository"
	"filmestop/internal/dto/request"
	"filmestop/pkg/cache"

	"go.uber.org/zap"
)

// newTestService wires the full service stack on the in-memory repository.
// The genre catalogue comes pre-seeded.
func newTestService(t *testing.T) *Service {
	t.Helper()
	repo, db := repository.NewMemoryRepository()
	return NewService(db, repo, cache.NewMemoryCache(time.Minute), zap.NewNop())
}

// newUncachedService is for tests that read back data they just mutated;
// the movie service treats a nil cache as a permanent miss.
func newUncachedService(t *testing.T) *Service {
	t.Helper()
	repo, db := repository.NewMemoryRepository()
	return NewService(db, repo, nil, zap.NewNop())
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func seedUser(t *testing.T, svc *Service, name string) int64 {
	t.Helper()
	user, err := svc.User.CreateUser(context.Background(), &request.UserRequest{Name: name})
	if err != nil {
		t.Fatalf("seed user %q: %v", name, err)
	}
	return user.ID
}

func seedMovie(t *testing.T, svc *Service, name string, genreID int64) int64 {
	t.Helper()
	movie, err := svc.Movie.CreateMovie(context.Background(), &request.MovieRequest{
		Name:     name,
		Director: "Test Director",
		Year:     2020,
		GenreID:  genreID,
	})
	if err != nil {
		t.Fatalf("seed movie %q: %v", name, err)
	}
	return movie.ID
}

func seedRental(t *testing.T, svc *Service, userID, movieID int64) {
	t.Helper()
	_, err := svc.Rental.RentMovie(context.Background(), userID, movieID, &request.RentalRequest{
		StartDate: "2025-01-01",
		RentDays:  intPtr(7),
	})
	if err != nil {
		t.Fatalf("seed rental user=%d movie=%d: %v", userID, movieID, err)
	}
}
