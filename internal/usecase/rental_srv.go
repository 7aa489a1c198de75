package usecase

import (
	"context"
	"fmt"
	"time"

	"filmestop/internal/data/entity"
	"filmestop/internal/data/repository"
	"filmestop/internal/dto/request"
	"filmestop/internal/dto/response"

	"go.uber.org/zap"
)

const rentDateLayout = "2006-01-02"

type RentalService interface {
	RentMovie(ctx context.Context, userID, movieID int64, req *request.RentalRequest) (*response.RentalResponse, error)

	// GetRentedMovies lists every rental of the user with the rate the user
	// gave each movie, if any. An unknown user yields an empty list, not an
	// error: user existence is deliberately not validated here.
	GetRentedMovies(ctx context.Context, userID int64) ([]response.RentedMovieResponse, error)
}

type rentalService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRentalService(repo *repository.Repository, log *zap.Logger) RentalService {
	return &rentalService{
		repo: repo,
		log:  log.With(zap.String("service", "rental")),
	}
}

func (s *rentalService) RentMovie(ctx context.Context, userID, movieID int64, req *request.RentalRequest) (*response.RentalResponse, error) {
	if req.StartDate == "" || req.RentDays == nil {
		return nil, invalidf("Missing rent information")
	}

	startDate, err := time.Parse(rentDateLayout, req.StartDate)
	if err != nil {
		return nil, invalidf("Invalid start_date format. Use YYYY-MM-DD")
	}

	if *req.RentDays < 1 {
		return nil, invalidf("rent_days must be a positive integer")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	if user == nil {
		return nil, notFoundf("User id not found")
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie by id: %w", err)
	}
	if movie == nil {
		return nil, notFoundf("Movie id not found")
	}

	// No dedup: renting the same movie again creates a new row.
	rental := &entity.Rental{
		UserID:    userID,
		MovieID:   movieID,
		StartDate: startDate,
		RentDays:  *req.RentDays,
	}

	if err := s.repo.Rental.Create(ctx, rental); err != nil {
		s.log.Error("Failed to create rental",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("create rental: %w", err)
	}

	s.log.Info("Rental created",
		zap.Int64("rental_id", rental.ID),
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID),
		zap.Int("rent_days", rental.RentDays),
	)

	rentalResp := response.RentalToResponse(rental)
	return &rentalResp, nil
}

func (s *rentalService) GetRentedMovies(ctx context.Context, userID int64) ([]response.RentedMovieResponse, error) {
	rented, err := s.repo.Rental.ListRentedMovies(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list rented movies", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("list rented movies: %w", err)
	}

	rentedResponses := make([]response.RentedMovieResponse, len(rented))
	for i, row := range rented {
		rentedResponses[i] = response.RentedMovieToResponse(row)
	}

	return rentedResponses, nil
}
