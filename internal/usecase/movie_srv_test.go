package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"filmestop/internal/dto/request"
)

func TestCreateMovie_OK(t *testing.T) {
	svc := newTestService(t)

	movie, err := svc.Movie.CreateMovie(context.Background(), &request.MovieRequest{
		Name:     "Inception",
		Director: "Christopher Nolan",
		Year:     2010,
		GenreID:  1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie.Genre == nil || *movie.Genre != "Action" {
		t.Fatalf("expected genre name Action, got %v", movie.Genre)
	}
	if movie.AvgRate != 0 || movie.CountReview != 0 {
		t.Fatalf("new movie must start unrated, got avg=%v count=%d", movie.AvgRate, movie.CountReview)
	}
}

func TestCreateMovie_UnknownGenre(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Movie.CreateMovie(context.Background(), &request.MovieRequest{
		Name:     "Inception",
		Director: "Christopher Nolan",
		Year:     2010,
		GenreID:  9999,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown genre, got: %v", err)
	}
}

func TestCreateMovie_ValidationFailure(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Movie.CreateMovie(context.Background(), &request.MovieRequest{
		Name:     "",
		Director: "Christopher Nolan",
		Year:     2010,
		GenreID:  1,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got: %v", err)
	}
}

func TestGetMovies_All(t *testing.T) {
	svc := newTestService(t)
	seedMovie(t, svc, "Inception", 1)
	seedMovie(t, svc, "Airplane!", 2)

	movies, err := svc.Movie.GetMovies(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
}

func TestGetMovies_GenreFilter(t *testing.T) {
	svc := newTestService(t)
	seedMovie(t, svc, "Inception", 1)
	seedMovie(t, svc, "Airplane!", 2)

	movies, err := svc.Movie.GetMovies(context.Background(), strPtr("2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected 1 movie in genre 2, got %d", len(movies))
	}
	if movies[0].Name != "Airplane!" {
		t.Fatalf("expected Airplane!, got %s", movies[0].Name)
	}
	if movies[0].Genre == nil || *movies[0].Genre != "Comedy" {
		t.Fatalf("expected genre name Comedy, got %v", movies[0].Genre)
	}
}

func TestGetMovies_GenreFilterNoMatches(t *testing.T) {
	svc := newTestService(t)
	seedMovie(t, svc, "Inception", 1)

	_, err := svc.Movie.GetMovies(context.Background(), strPtr("999"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty genre, got: %v", err)
	}
	if !strings.Contains(err.Error(), "No movies found for genre id: 999") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestGetMovies_GenreFilterNotAnInteger(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Movie.GetMovies(context.Background(), strPtr("abc"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-integer genre_id, got: %v", err)
	}
	if !strings.Contains(err.Error(), "genre_id must be an integer") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestGetMovies_ListIsCached(t *testing.T) {
	svc := newTestService(t)
	seedMovie(t, svc, "Inception", 1)

	first, err := svc.Movie.GetMovies(context.Background(), nil)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}

	// A movie added after the list was cached stays invisible until the
	// entry expires.
	seedMovie(t, svc, "Airplane!", 2)

	second, err := svc.Movie.GetMovies(context.Background(), nil)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected cached list of %d movies, got %d", len(first), len(second))
	}
}

func TestGetMovieByID_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Movie.GetMovieByID(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if !strings.Contains(err.Error(), "There is no movie with the ID: 9999") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestUpdateMovie_Partial(t *testing.T) {
	svc := newUncachedService(t)
	movieID := seedMovie(t, svc, "Inception", 1)

	movie, err := svc.Movie.UpdateMovie(context.Background(), movieID, &request.MovieUpdateRequest{
		Year: intPtr(2011),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie.Year != 2011 {
		t.Fatalf("expected year 2011, got %d", movie.Year)
	}
	if movie.Name != "Inception" || movie.Director != "Test Director" {
		t.Fatalf("untouched fields changed: %+v", movie)
	}
}

func TestUpdateMovie_UnknownGenre(t *testing.T) {
	svc := newUncachedService(t)
	movieID := seedMovie(t, svc, "Inception", 1)

	_, err := svc.Movie.UpdateMovie(context.Background(), movieID, &request.MovieUpdateRequest{
		GenreID: int64Ptr(9999),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown genre, got: %v", err)
	}
}

func TestDeleteMovie(t *testing.T) {
	svc := newUncachedService(t)
	movieID := seedMovie(t, svc, "Inception", 1)

	if err := svc.Movie.DeleteMovie(context.Background(), movieID); err != nil {
		t.Fatalf("delete movie: %v", err)
	}

	_, err := svc.Movie.GetMovieByID(context.Background(), movieID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}

	if err := svc.Movie.DeleteMovie(context.Background(), movieID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got: %v", err)
	}
}
