package usecase

import (
	"context"

	"filmestop/internal/data/repository"
	"filmestop/pkg/cache"
	"filmestop/pkg/database"

	"go.uber.org/zap"
)

// TxBeginner opens the transaction shared by a review write and the rating
// recompute. database.PgxIface satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (database.Tx, error)
}

type Service struct {
	Genre  GenreService
	User   UserService
	Movie  MovieService
	Rental RentalService
	Review ReviewService
}

func NewService(db TxBeginner, repo *repository.Repository, store cache.Cache, log *zap.Logger) *Service {
	return &Service{
		Genre:  NewGenreService(repo, log),
		User:   NewUserService(repo.User, log),
		Movie:  NewMovieService(repo, store, log),
		Rental: NewRentalService(repo, log),
		Review: NewReviewService(db, repo, log),
	}
}
