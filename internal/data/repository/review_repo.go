package repository

import (
	"context"
	"fmt"

	"filmestop/internal/data/entity"
	"filmestop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ReviewRepository runs on the caller's Querier: review writes and the
// aggregate recompute share one transaction with the movie row update.
type ReviewRepository interface {
	FindByUserAndMovie(ctx context.Context, q database.Querier, userID, movieID int64) (*entity.Review, error)
	Insert(ctx context.Context, q database.Querier, review *entity.Review) error
	UpdateRate(ctx context.Context, q database.Querier, id int64, rate int) error

	// AggregateByMovie recomputes the mean and count over all reviews of the
	// movie. Both are 0 when no reviews exist.
	AggregateByMovie(ctx context.Context, q database.Querier, movieID int64) (float64, int, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) FindByUserAndMovie(ctx context.Context, q database.Querier, userID, movieID int64) (*entity.Review, error) {
	query := `
		SELECT id, user_id, movie_id, rate, created_at
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2
		LIMIT 1
	`

	var review entity.Review
	err := q.QueryRow(ctx, query, userID, movieID).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rate,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find review by user %d and movie %d: %w", userID, movieID, err)
	}

	return &review, nil
}

func (r *reviewRepository) Insert(ctx context.Context, q database.Querier, review *entity.Review) error {
	query := `
		INSERT INTO reviews (user_id, movie_id, rate)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		review.UserID,
		review.MovieID,
		review.Rate,
	).Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		r.log.Error("Failed to insert review",
			zap.Error(err),
			zap.Int64("user_id", review.UserID),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("insert review for movie %d by user %d: %w",
			review.MovieID, review.UserID, err)
	}

	return nil
}

func (r *reviewRepository) UpdateRate(ctx context.Context, q database.Querier, id int64, rate int) error {
	query := `UPDATE reviews SET rate = $2 WHERE id = $1`

	result, err := q.Exec(ctx, query, id, rate)
	if err != nil {
		r.log.Error("Failed to update review rate",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("update review %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d not found", id)
	}

	return nil
}

func (r *reviewRepository) AggregateByMovie(ctx context.Context, q database.Querier, movieID int64) (float64, int, error) {
	query := `
		SELECT
			COALESCE(AVG(rate), 0) AS avg_rate,
			COUNT(*) AS count_review
		FROM reviews
		WHERE movie_id = $1
	`

	var avgRate float64
	var countReview int
	err := q.QueryRow(ctx, query, movieID).Scan(&avgRate, &countReview)
	if err != nil {
		r.log.Error("Failed to aggregate reviews by movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return 0, 0, fmt.Errorf("aggregate reviews for movie %d: %w", movieID, err)
	}

	return avgRate, countReview, nil
}
