package usecase

import (
	"context"
	"fmt"
	"time"

	"catalog-api/internal/data/repository"
	"catalog-api/internal/dto/request"
	"catalog-api/internal/dto/response"
	"catalog-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *request.UserUpdateRequest) (*response.UserResponse, error)
	FindAll(ctx context.Context, page request.Pagination) (*response.ListResponse[response.UserResponse], error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req *request.UserUpdateRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("update user: %w", err)
	}

	// Password changes go through a dedicated statement so the stored
	// hash is never overwritten by a stale projection.
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("hash password: %w", err)
		}
		if err := s.repo.User.UpdatePassword(ctx, id, hash); err != nil {
			s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", id.String()))
			return nil, fmt.Errorf("update password: %w", err)
		}
	}

	s.log.Info("User profile updated", zap.String("user_id", id.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) FindAll(ctx context.Context, page request.Pagination) (*response.ListResponse[response.UserResponse], error) {
	page = page.Clamp()

	users, err := s.repo.User.FindAll(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, response.UserToResponse(u))
	}

	return &response.ListResponse[response.UserResponse]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}
