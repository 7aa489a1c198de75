package usecase

import (
	"context"
	"testing"

	"filmestop/internal/data/repository"
)

func TestGetGenres_SeededCatalogue(t *testing.T) {
	svc := newTestService(t)

	genres, err := svc.Genre.GetGenres(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(genres) != len(repository.DefaultGenres) {
		t.Fatalf("expected %d genres, got %d", len(repository.DefaultGenres), len(genres))
	}
	for i, genre := range genres {
		if genre.Name != repository.DefaultGenres[i] {
			t.Fatalf("genre %d: expected %s, got %s", i, repository.DefaultGenres[i], genre.Name)
		}
	}
}
