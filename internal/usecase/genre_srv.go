package usecase

import (
	"context"
	"fmt"

	"filmestop/internal/data/repository"
	"filmestop/internal/dto/response"

	"go.uber.org/zap"
)

type GenreService interface {
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
}

type genreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err))
		return nil, fmt.Errorf("get genres: %w", err)
	}

	genreResponses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = response.GenreToResponse(genre)
	}

	return genreResponses, nil
}
