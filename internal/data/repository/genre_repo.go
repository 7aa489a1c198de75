package repository

import (
	"context"
	"fmt"

	"filmestop/internal/data/entity"
	"filmestop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GenreRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Genre, error)
	FindAll(ctx context.Context) ([]*entity.Genre, error)
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	query := `SELECT id, name, created_at FROM genres WHERE id = $1`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(
		&genre.ID,
		&genre.Name,
		&genre.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.Int64("genre_id", id),
		)
		return nil, fmt.Errorf("find genre by id: %w", err)
	}

	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	query := `SELECT id, name, created_at FROM genres ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all genres", zap.Error(err))
		return nil, fmt.Errorf("find all genres: %w", err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.CreatedAt); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}
