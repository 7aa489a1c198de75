package usecase

import (
	"context"
	"fmt"
	"strconv"

	"filmestop/internal/data/entity"
	"filmestop/internal/data/repository"
	"filmestop/internal/dto/request"
	"filmestop/internal/dto/response"
	"filmestop/pkg/cache"
	"filmestop/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	// GetMovies lists all movies, or only the ones in a genre when genreID
	// carries the raw query parameter.
	GetMovies(ctx context.Context, genreID *string) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID int64) error
}

type movieService struct {
	repo  *repository.Repository
	cache cache.Cache
	log   *zap.Logger
}

func NewMovieService(repo *repository.Repository, store cache.Cache, log *zap.Logger) MovieService {
	return &movieService{
		repo:  repo,
		cache: store,
		log:   log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, genreID *string) ([]response.MovieResponse, error) {
	// Read-through cache keyed by the raw request parameter. Mutations never
	// invalidate; entries age out by TTL.
	key := "movies:list:all"
	if genreID != nil {
		key = "movies:list:genre=" + *genreID
	}

	var cached []response.MovieResponse
	if hit := s.cacheGet(ctx, key, &cached); hit {
		return cached, nil
	}

	var movies []*entity.Movie
	if genreID == nil {
		all, err := s.repo.Movie.FindAll(ctx)
		if err != nil {
			s.log.Error("Failed to get movies", zap.Error(err))
			return nil, fmt.Errorf("get movies: %w", err)
		}
		movies = all
	} else {
		id, err := strconv.ParseInt(*genreID, 10, 64)
		if err != nil {
			return nil, invalidf("genre_id must be an integer")
		}

		byGenre, err := s.repo.Movie.FindByGenreID(ctx, id)
		if err != nil {
			s.log.Error("Failed to get movies by genre", zap.Error(err), zap.Int64("genre_id", id))
			return nil, fmt.Errorf("get movies by genre: %w", err)
		}
		if len(byGenre) == 0 {
			return nil, notFoundf("No movies found for genre id: %d", id)
		}
		movies = byGenre
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	s.cacheSet(ctx, key, movieResponses)

	return movieResponses, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	key := "movies:detail:" + strconv.FormatInt(movieID, 10)

	var cached response.MovieResponse
	if hit := s.cacheGet(ctx, key, &cached); hit {
		return &cached, nil
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie by ID", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, notFoundf("There is no movie with the ID: %d", movieID)
	}

	movieResp := response.MovieToResponse(movie)
	s.cacheSet(ctx, key, movieResp)

	return &movieResp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, invalidf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre, err := s.repo.Genre.FindByID(ctx, req.GenreID)
	if err != nil {
		return nil, fmt.Errorf("find genre by id: %w", err)
	}
	if genre == nil {
		return nil, invalidf("Invalid genre_id")
	}

	movie := &entity.Movie{
		Name:     req.Name,
		Director: req.Director,
		Year:     req.Year,
		GenreID:  req.GenreID,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	movie.GenreName = &genre.Name

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("name", movie.Name),
		zap.Int64("genre_id", movie.GenreID),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, invalidf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, notFoundf("Movie not found")
	}

	if req.Name != nil {
		movie.Name = *req.Name
	}
	if req.Director != nil {
		movie.Director = *req.Director
	}
	if req.Year != nil {
		movie.Year = *req.Year
	}
	if req.GenreID != nil {
		movie.GenreID = *req.GenreID
	}

	// The genre relation must stay valid, whether or not it changed.
	genre, err := s.repo.Genre.FindByID(ctx, movie.GenreID)
	if err != nil {
		return nil, fmt.Errorf("find genre by id: %w", err)
	}
	if genre == nil {
		return nil, invalidf("Invalid genre_id")
	}

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("update movie: %w", err)
	}

	movie.GenreName = &genre.Name

	s.log.Info("Movie updated", zap.Int64("movie_id", movieID))

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID int64) error {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return notFoundf("Movie not found")
	}

	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.Int64("movie_id", movieID))
		return fmt.Errorf("delete movie: %w", err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (s *movieService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}

	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		// Cache failures degrade to the database.
		s.log.Warn("Cache read failed", zap.Error(err), zap.String("key", key))
		return false
	}
	if hit {
		s.log.Debug("Cache hit", zap.String("key", key))
	}
	return hit
}

func (s *movieService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, key, value); err != nil {
		s.log.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
	}
}
