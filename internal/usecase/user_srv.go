package usecase

import (
	"context"
	"fmt"

	"filmestop/internal/data/entity"
	"filmestop/internal/data/repository"
	"filmestop/internal/dto/request"
	"filmestop/internal/dto/response"
	"filmestop/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error)
	GetUsers(ctx context.Context) ([]response.UserResponse, error)
	GetUserByID(ctx context.Context, userID int64) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, userID int64, req *request.UserUpdateRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, invalidf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user := &entity.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created", zap.Int64("user_id", user.ID))

	userResp := response.UserToResponse(user)
	return &userResp, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get users", zap.Error(err))
		return nil, fmt.Errorf("get users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return userResponses, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user by ID", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	if user == nil {
		return nil, notFoundf("User not found")
	}

	userResp := response.UserToResponse(user)
	return &userResp, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, req *request.UserUpdateRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, invalidf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	if user == nil {
		return nil, notFoundf("User not found")
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("User updated", zap.Int64("user_id", userID))

	userResp := response.UserToResponse(user)
	return &userResp, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user by id: %w", err)
	}
	if user == nil {
		return notFoundf("User not found")
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}
