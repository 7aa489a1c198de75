package adaptor

import (
	"encoding/json"
	"net/http"

	"filmestop/internal/dto/request"
	"filmestop/internal/usecase"
	"filmestop/pkg/utils"

	"go.uber.org/zap"
)

type RentalHandler struct {
	service usecase.RentalService
	log     *zap.Logger
}

func NewRentalHandler(service usecase.RentalService, log *zap.Logger) *RentalHandler {
	return &RentalHandler{
		service: service,
		log:     log.With(zap.String("handler", "rental")),
	}
}

// RentMovie handles POST /users/{user_id}/movies/{movie_id}/rent
func (h *RentalHandler) RentMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlParamID(w, r, "user_id")
	if !ok {
		return
	}
	movieID, ok := urlParamID(w, r, "movie_id")
	if !ok {
		return
	}

	var req request.RentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rental, err := h.service.RentMovie(r.Context(), userID, movieID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "rent movie")
		return
	}

	utils.ResponseCreated(w, "Successfully created new movie rent", rental)
}

// GetRentedMovies handles GET /users/{user_id}/rented_movies
func (h *RentalHandler) GetRentedMovies(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlParamID(w, r, "user_id")
	if !ok {
		return
	}

	rented, err := h.service.GetRentedMovies(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get rented movies")
		return
	}

	utils.ResponseSuccess(w, "success", rented)
}
