package usecase

import (
	"context"
	"errors"
	"testing"

	"filmestop/internal/dto/request"
)

func TestRentMovie_OK(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)

	rental, err := svc.Rental.RentMovie(context.Background(), userID, movieID, &request.RentalRequest{
		StartDate: "2025-01-01",
		RentDays:  intPtr(5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rental.UserID != userID || rental.MovieID != movieID {
		t.Fatalf("rental has wrong ids: %+v", rental)
	}
	if rental.StartDate != "2025-01-01" || rental.RentDays != 5 {
		t.Fatalf("expected start 2025-01-01 for 5 days, got %s for %d", rental.StartDate, rental.RentDays)
	}
}

func TestRentMovie_MissingBody(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)

	cases := []request.RentalRequest{
		{},
		{StartDate: "2025-01-01"},
		{RentDays: intPtr(5)},
	}
	for i, req := range cases {
		_, err := svc.Rental.RentMovie(context.Background(), userID, movieID, &req)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got: %v", i, err)
		}
	}
}

func TestRentMovie_BadStartDate(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)

	for _, date := range []string{"01-01-2025", "2025/01/01", "not-a-date"} {
		_, err := svc.Rental.RentMovie(context.Background(), userID, movieID, &request.RentalRequest{
			StartDate: date,
			RentDays:  intPtr(5),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("date %q: expected ErrInvalidInput, got: %v", date, err)
		}
	}
}

func TestRentMovie_NonPositiveDays(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)

	for _, days := range []int{0, -3} {
		_, err := svc.Rental.RentMovie(context.Background(), userID, movieID, &request.RentalRequest{
			StartDate: "2025-01-01",
			RentDays:  intPtr(days),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("days %d: expected ErrInvalidInput, got: %v", days, err)
		}
	}
}

func TestRentMovie_UnknownUserOrMovie(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)

	req := &request.RentalRequest{StartDate: "2025-01-01", RentDays: intPtr(5)}

	_, err := svc.Rental.RentMovie(context.Background(), 9999, movieID, req)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user: expected ErrNotFound, got: %v", err)
	}

	_, err = svc.Rental.RentMovie(context.Background(), userID, 9999, req)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown movie: expected ErrNotFound, got: %v", err)
	}
}

func TestRentMovie_RepeatRentalCreatesNewRow(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)

	seedRental(t, svc, userID, movieID)
	seedRental(t, svc, userID, movieID)

	rented, err := svc.Rental.GetRentedMovies(context.Background(), userID)
	if err != nil {
		t.Fatalf("get rented movies: %v", err)
	}
	if len(rented) != 2 {
		t.Fatalf("expected 2 rentals of the same movie, got %d", len(rented))
	}
}

func TestGetRentedMovies_UnknownUserIsEmpty(t *testing.T) {
	svc := newTestService(t)

	rented, err := svc.Rental.GetRentedMovies(context.Background(), 9999)
	if err != nil {
		t.Fatalf("unexpected error for unknown user: %v", err)
	}
	if rented == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(rented) != 0 {
		t.Fatalf("expected empty list, got %d items", len(rented))
	}
}

func TestGetRentedMovies_CarriesUserRate(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")
	movieID := seedMovie(t, svc, "Inception", 1)
	seedRental(t, svc, userID, movieID)

	rented, err := svc.Rental.GetRentedMovies(context.Background(), userID)
	if err != nil {
		t.Fatalf("get rented movies: %v", err)
	}
	if len(rented) != 1 {
		t.Fatalf("expected 1 rental, got %d", len(rented))
	}
	if rented[0].MovieRating != nil {
		t.Fatalf("expected nil rating before a review, got %d", *rented[0].MovieRating)
	}
	if rented[0].MovieName != "Inception" || rented[0].RentStartDate != "2025-01-01" {
		t.Fatalf("unexpected rental row: %+v", rented[0])
	}

	if _, err := svc.Review.RateMovie(context.Background(), userID, movieID, &request.ReviewRequest{Rate: intPtr(85)}); err != nil {
		t.Fatalf("rate movie: %v", err)
	}

	rented, err = svc.Rental.GetRentedMovies(context.Background(), userID)
	if err != nil {
		t.Fatalf("get rented movies after review: %v", err)
	}
	if rented[0].MovieRating == nil || *rented[0].MovieRating != 85 {
		t.Fatalf("expected rating 85 after review, got %v", rented[0].MovieRating)
	}
}
