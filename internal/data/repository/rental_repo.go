package repository

import (
	"context"
	"fmt"

	"filmestop/internal/data/entity"
	"filmestop/pkg/database"

	"go.uber.org/zap"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *entity.Rental) error
	ExistsByUserAndMovie(ctx context.Context, userID, movieID int64) (bool, error)

	// ListRentedMovies returns every rental of the user, left-joined with the
	// review the user gave that movie, if any.
	ListRentedMovies(ctx context.Context, userID int64) ([]*entity.RentedMovie, error)
}

type rentalRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRentalRepository(db database.PgxIface, log *zap.Logger) RentalRepository {
	return &rentalRepository{
		db:  db,
		log: log.With(zap.String("repository", "rental")),
	}
}

func (r *rentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	query := `
		INSERT INTO rentals (user_id, movie_id, start_date, rent_days)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		rental.UserID,
		rental.MovieID,
		rental.StartDate,
		rental.RentDays,
	).Scan(&rental.ID, &rental.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create rental",
			zap.Error(err),
			zap.Int64("user_id", rental.UserID),
			zap.Int64("movie_id", rental.MovieID),
		)
		return fmt.Errorf("create rental for movie %d by user %d: %w",
			rental.MovieID, rental.UserID, err)
	}

	return nil
}

func (r *rentalRepository) ExistsByUserAndMovie(ctx context.Context, userID, movieID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rentals WHERE user_id = $1 AND movie_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check rental existence",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return false, fmt.Errorf("check rental by user %d and movie %d: %w", userID, movieID, err)
	}

	return exists, nil
}

func (r *rentalRepository) ListRentedMovies(ctx context.Context, userID int64) ([]*entity.RentedMovie, error) {
	query := `
		SELECT
			r.id AS rent_id,
			m.name AS movie_name,
			r.start_date AS rent_start_date,
			rev.rate AS movie_rating
		FROM rentals r
		JOIN movies m ON r.movie_id = m.id
		LEFT JOIN reviews rev ON r.movie_id = rev.movie_id AND r.user_id = rev.user_id
		WHERE r.user_id = $1
		ORDER BY r.id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list rented movies",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("list rented movies for user %d: %w", userID, err)
	}
	defer rows.Close()

	var rented []*entity.RentedMovie
	for rows.Next() {
		var row entity.RentedMovie
		err := rows.Scan(
			&row.RentID,
			&row.MovieName,
			&row.StartDate,
			&row.Rate,
		)
		if err != nil {
			r.log.Error("Failed to scan rented movie row", zap.Error(err))
			return nil, fmt.Errorf("scan rented movie row: %w", err)
		}
		rented = append(rented, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rented movie rows: %w", err)
	}

	return rented, nil
}
