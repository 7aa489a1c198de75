package repository

import (
	"filmestop/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Genre  GenreRepository
	User   UserRepository
	Movie  MovieRepository
	Rental RentalRepository
	Review ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Genre:  NewGenreRepository(db, log),
		User:   NewUserRepository(db, log),
		Movie:  NewMovieRepository(db, log),
		Rental: NewRentalRepository(db, log),
		Review: NewReviewRepository(db, log),
	}
}
