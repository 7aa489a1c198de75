package adaptor

import (
	"encoding/json"
	"net/http"

	"filmestop/internal/dto/request"
	"filmestop/internal/usecase"
	"filmestop/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created", user)
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// GetUserByID handles GET /users/{user_id}
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlParamID(w, r, "user_id")
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user by ID")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// UpdateUser handles PUT /users/{user_id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlParamID(w, r, "user_id")
	if !ok {
		return
	}

	var req request.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated", user)
}

// DeleteUser handles DELETE /users/{user_id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlParamID(w, r, "user_id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted", nil)
}
