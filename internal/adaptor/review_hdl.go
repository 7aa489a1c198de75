package adaptor

import (
	"encoding/json"
	"net/http"

	"filmestop/internal/dto/request"
	"filmestop/internal/usecase"
	"filmestop/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// RateMovie handles POST /users/{user_id}/movies/{movie_id}/review
func (h *ReviewHandler) RateMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlParamID(w, r, "user_id")
	if !ok {
		return
	}
	movieID, ok := urlParamID(w, r, "movie_id")
	if !ok {
		return
	}

	var req request.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.RateMovie(r.Context(), userID, movieID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "rate movie")
		return
	}

	utils.ResponseSuccess(w, "Review saved and movie rating updated", review)
}
