package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"filmestop/internal/usecase"
	"filmestop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Genre  *GenreHandler
	User   *UserHandler
	Movie  *MovieHandler
	Rental *RentalHandler
	Review *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Genre:  NewGenreHandler(service.Genre, log),
		User:   NewUserHandler(service.User, log),
		Movie:  NewMovieHandler(service.Movie, log),
		Rental: NewRentalHandler(service.Rental, log),
		Review: NewReviewHandler(service.Review, log),
	}
}

// handleServiceError maps the service error taxonomy to HTTP statuses.
// Anything outside the taxonomy is a server fault and stays opaque.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// urlParamID parses an integer path parameter. The second return is false
// when the parameter is not a well-formed id; a 400 has been written.
func urlParamID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, name+" must be an integer", nil)
		return 0, false
	}

	return id, true
}
