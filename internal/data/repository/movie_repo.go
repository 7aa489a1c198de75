package repository

import (
	"context"
	"fmt"

	"filmestop/internal/data/entity"
	"filmestop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// CRUD Movie
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByGenreID(ctx context.Context, genreID int64) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error

	// Aggregate fields, written inside the review transaction.
	Lock(ctx context.Context, q database.Querier, id int64) error
	UpdateAggregates(ctx context.Context, q database.Querier, id int64, avgRate float64, countReview int) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `
	m.id, m.name, m.director, m.year, m.genre_id,
	m.avg_rate, m.count_review, g.name AS genre_name, m.created_at
`

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (name, director, year, genre_id, avg_rate, count_review)
		VALUES ($1, $2, $3, $4, 0, 0)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		movie.Name,
		movie.Director,
		movie.Year,
		movie.GenreID,
	).Scan(&movie.ID, &movie.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("name", movie.Name),
		)
		return fmt.Errorf("create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies m
		LEFT JOIN genres g ON g.id = m.genre_id
		WHERE m.id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Name,
		&movie.Director,
		&movie.Year,
		&movie.GenreID,
		&movie.AvgRate,
		&movie.CountReview,
		&movie.GenreName,
		&movie.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by id %d: %w", id, err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies m
		LEFT JOIN genres g ON g.id = m.genre_id
		ORDER BY m.id
	`

	return r.queryMovies(ctx, query)
}

func (r *movieRepository) FindByGenreID(ctx context.Context, genreID int64) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies m
		LEFT JOIN genres g ON g.id = m.genre_id
		WHERE m.genre_id = $1
		ORDER BY m.id
	`

	return r.queryMovies(ctx, query, genreID)
}

func (r *movieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]*entity.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query movies", zap.Error(err))
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Name,
			&movie.Director,
			&movie.Year,
			&movie.GenreID,
			&movie.AvgRate,
			&movie.CountReview,
			&movie.GenreName,
			&movie.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET name = $2, director = $3, year = $4, genre_id = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Name,
		movie.Director,
		movie.Year,
		movie.GenreID,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d not found", movie.ID)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d not found", id)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

// Lock takes a row lock on the movie for the duration of the caller's
// transaction, serializing the read-recompute-write aggregate sequence.
func (r *movieRepository) Lock(ctx context.Context, q database.Querier, id int64) error {
	query := `SELECT id FROM movies WHERE id = $1 FOR UPDATE`

	var locked int64
	if err := q.QueryRow(ctx, query, id).Scan(&locked); err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("movie %d not found", id)
		}
		return fmt.Errorf("lock movie %d: %w", id, err)
	}

	return nil
}

func (r *movieRepository) UpdateAggregates(ctx context.Context, q database.Querier, id int64, avgRate float64, countReview int) error {
	query := `UPDATE movies SET avg_rate = $2, count_review = $3 WHERE id = $1`

	result, err := q.Exec(ctx, query, id, avgRate, countReview)
	if err != nil {
		r.log.Error("Failed to update movie aggregates",
			zap.Error(err),
			zap.Int64("movie_id", id),
			zap.Float64("avg_rate", avgRate),
			zap.Int("count_review", countReview),
		)
		return fmt.Errorf("update movie aggregates %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d not found", id)
	}

	return nil
}
