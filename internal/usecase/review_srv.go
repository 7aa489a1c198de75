package usecase

import (
	"context"
	"fmt"
	"math"

	"filmestop/internal/data/entity"
	"filmestop/internal/data/repository"
	"filmestop/internal/dto/request"
	"filmestop/internal/dto/response"
	"filmestop/pkg/database"

	"go.uber.org/zap"
)

type ReviewService interface {
	// RateMovie creates the user's review of a movie, or overwrites the rate
	// of an existing one. Requires a prior rental by the same user.
	RateMovie(ctx context.Context, userID, movieID int64, req *request.ReviewRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	db   TxBeginner
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(db TxBeginner, repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) RateMovie(ctx context.Context, userID, movieID int64, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if req.Rate == nil {
		return nil, invalidf("Missing review information")
	}

	rate := *req.Rate
	if rate < 0 || rate > 100 {
		return nil, invalidf("Rate must be an integer between 0 and 100")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie by id: %w", err)
	}
	if user == nil || movie == nil {
		return nil, notFoundf("User or movie not found")
	}

	rented, err := s.repo.Rental.ExistsByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return nil, fmt.Errorf("check rental: %w", err)
	}
	if !rented {
		return nil, forbiddenf("You can only rate movies you have rented")
	}

	// The review write and the aggregate recompute share one transaction,
	// with a row lock on the movie so concurrent reviews of the same movie
	// cannot lose an update.
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin review transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Movie.Lock(ctx, tx, movieID); err != nil {
		return nil, fmt.Errorf("lock movie row: %w", err)
	}

	review, err := s.repo.Review.FindByUserAndMovie(ctx, tx, userID, movieID)
	if err != nil {
		return nil, fmt.Errorf("find existing review: %w", err)
	}

	if review != nil {
		// Overwrite, never duplicate: one review per (user, movie).
		if err := s.repo.Review.UpdateRate(ctx, tx, review.ID, rate); err != nil {
			return nil, fmt.Errorf("update review: %w", err)
		}
		review.Rate = rate
	} else {
		review = &entity.Review{
			UserID:  userID,
			MovieID: movieID,
			Rate:    rate,
		}
		if err := s.repo.Review.Insert(ctx, tx, review); err != nil {
			return nil, fmt.Errorf("insert review: %w", err)
		}
	}

	avgRate, countReview, err := s.recalculateRating(ctx, tx, movieID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit review transaction: %w", err)
	}

	s.log.Info("Review saved and movie rating updated",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID),
		zap.Int("rate", rate),
		zap.Float64("avg_rate", avgRate),
		zap.Int("count_review", countReview),
	)

	return &response.ReviewResponse{
		ReviewID:    review.ID,
		UserID:      userID,
		MovieID:     movieID,
		Rate:        rate,
		AvgRate:     avgRate,
		CountReview: countReview,
	}, nil
}

// recalculateRating recomputes the movie's average rate and review count
// from all its review rows and writes them back on the movie row. The full
// recompute is O(reviews-per-movie) and runs on every review write.
func (s *reviewService) recalculateRating(ctx context.Context, q database.Querier, movieID int64) (float64, int, error) {
	avgRate, countReview, err := s.repo.Review.AggregateByMovie(ctx, q, movieID)
	if err != nil {
		return 0, 0, fmt.Errorf("aggregate reviews: %w", err)
	}

	avgRate = math.Round(avgRate*100) / 100

	if err := s.repo.Movie.UpdateAggregates(ctx, q, movieID, avgRate, countReview); err != nil {
		return 0, 0, fmt.Errorf("update movie aggregates: %w", err)
	}

	return avgRate, countReview, nil
}
