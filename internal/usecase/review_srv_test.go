package usecase

import (
	"context"
	"errors"
	"testing"

	"filmestop/internal/dto/request"
)

func TestRateMovie_RequiresRental(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)

	_, err := svc.Review.RateMovie(context.Background(), userID, movieID, &request.ReviewRequest{Rate: intPtr(80)})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden without a rental, got: %v", err)
	}
}

func TestRateMovie_MissingRate(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)
	seedRental(t, svc, userID, movieID)

	_, err := svc.Review.RateMovie(context.Background(), userID, movieID, &request.ReviewRequest{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing rate, got: %v", err)
	}
}

func TestRateMovie_RateOutOfRange(t *testing.T) {
	svc := newUncachedService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)
	seedRental(t, svc, userID, movieID)

	for _, rate := range []int{-1, 101} {
		_, err := svc.Review.RateMovie(context.Background(), userID, movieID, &request.ReviewRequest{Rate: intPtr(rate)})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("rate %d: expected ErrInvalidInput, got: %v", rate, err)
		}
	}

	// A rejected review must leave the movie aggregate untouched.
	movie, err := svc.Movie.GetMovieByID(context.Background(), movieID)
	if err != nil {
		t.Fatalf("get movie: %v", err)
	}
	if movie.AvgRate != 0 || movie.CountReview != 0 {
		t.Fatalf("expected untouched aggregate (0, 0), got (%v, %d)", movie.AvgRate, movie.CountReview)
	}
}

func TestRateMovie_ZeroIsValid(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)
	seedRental(t, svc, userID, movieID)

	review, err := svc.Review.RateMovie(context.Background(), userID, movieID, &request.ReviewRequest{Rate: intPtr(0)})
	if err != nil {
		t.Fatalf("unexpected error for rate 0: %v", err)
	}
	if review.Rate != 0 || review.AvgRate != 0 || review.CountReview != 1 {
		t.Fatalf("expected rate=0 avg=0 count=1, got rate=%d avg=%v count=%d", review.Rate, review.AvgRate, review.CountReview)
	}
}

func TestRateMovie_UnknownUserOrMovie(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)

	_, err := svc.Review.RateMovie(context.Background(), 9999, movieID, &request.ReviewRequest{Rate: intPtr(50)})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user: expected ErrNotFound, got: %v", err)
	}

	_, err = svc.Review.RateMovie(context.Background(), userID, 9999, &request.ReviewRequest{Rate: intPtr(50)})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown movie: expected ErrNotFound, got: %v", err)
	}
}

func TestRateMovie_OverwritesExistingReview(t *testing.T) {
	svc := newUncachedService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)
	seedRental(t, svc, userID, movieID)

	first, err := svc.Review.RateMovie(context.Background(), userID, movieID, &request.ReviewRequest{Rate: intPtr(80)})
	if err != nil {
		t.Fatalf("first review: %v", err)
	}
	if first.AvgRate != 80 || first.CountReview != 1 {
		t.Fatalf("after first review expected avg=80 count=1, got avg=%v count=%d", first.AvgRate, first.CountReview)
	}

	second, err := svc.Review.RateMovie(context.Background(), userID, movieID, &request.ReviewRequest{Rate: intPtr(60)})
	if err != nil {
		t.Fatalf("second review: %v", err)
	}
	if second.ReviewID != first.ReviewID {
		t.Fatalf("expected the same review row, got ids %d and %d", first.ReviewID, second.ReviewID)
	}
	if second.AvgRate != 60 || second.CountReview != 1 {
		t.Fatalf("after overwrite expected avg=60 count=1, got avg=%v count=%d", second.AvgRate, second.CountReview)
	}

	movie, err := svc.Movie.GetMovieByID(context.Background(), movieID)
	if err != nil {
		t.Fatalf("get movie: %v", err)
	}
	if movie.AvgRate != 60 || movie.CountReview != 1 {
		t.Fatalf("movie row expected avg=60 count=1, got avg=%v count=%d", movie.AvgRate, movie.CountReview)
	}
}

func TestRateMovie_AveragesAcrossUsers(t *testing.T) {
	svc := newUncachedService(t)
	movieID := seedMovie(t, svc, "Inception", 1)

	alice := seedUser(t, svc, "Alice")
	bob := seedUser(t, svc, "Bob")
	seedRental(t, svc, alice, movieID)
	seedRental(t, svc, bob, movieID)

	if _, err := svc.Review.RateMovie(context.Background(), alice, movieID, &request.ReviewRequest{Rate: intPtr(80)}); err != nil {
		t.Fatalf("alice review: %v", err)
	}
	review, err := svc.Review.RateMovie(context.Background(), bob, movieID, &request.ReviewRequest{Rate: intPtr(60)})
	if err != nil {
		t.Fatalf("bob review: %v", err)
	}

	if review.AvgRate != 70 || review.CountReview != 2 {
		t.Fatalf("expected avg=70 count=2, got avg=%v count=%d", review.AvgRate, review.CountReview)
	}
}

func TestRateMovie_RoundsToTwoDecimals(t *testing.T) {
	svc := newUncachedService(t)
	movieID := seedMovie(t, svc, "Inception", 1)

	// 70, 80, 81 average to 77.0; 70, 80, 82 to 77.33 (repeating, rounded).
	rates := []int{70, 80, 82}
	var last float64
	for i, rate := range rates {
		userID := seedUser(t, svc, "User")
		seedRental(t, svc, userID, movieID)
		review, err := svc.Review.RateMovie(context.Background(), userID, movieID, &request.ReviewRequest{Rate: intPtr(rate)})
		if err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
		last = review.AvgRate
	}

	if last != 77.33 {
		t.Fatalf("expected avg rounded to 77.33, got %v", last)
	}
}
