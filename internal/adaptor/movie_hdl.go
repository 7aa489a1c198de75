package adaptor

import (
	"encoding/json"
	"net/http"

	"filmestop/internal/dto/request"
	"filmestop/internal/usecase"
	"filmestop/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies with an optional genre_id query filter.
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	var genreID *string
	if raw := r.URL.Query().Get("genre_id"); raw != "" {
		genreID = &raw
	}

	movies, err := h.service.GetMovies(r.Context(), genreID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /movies/{movie_id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID, ok := urlParamID(w, r, "movie_id")
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created", movie)
}

// UpdateMovie handles PUT /movies/{movie_id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := urlParamID(w, r, "movie_id")
	if !ok {
		return
	}

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated", movie)
}

// DeleteMovie handles DELETE /movies/{movie_id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := urlParamID(w, r, "movie_id")
	if !ok {
		return
	}

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted", nil)
}
