package adaptor

import (
	"net/http"

	"filmestop/internal/usecase"
	"filmestop/pkg/utils"

	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /genres
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "success", genres)
}
