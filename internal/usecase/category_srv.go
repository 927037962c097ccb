package usecase

import (
	"context"
	"fmt"
	"time"

	"catalog-api/internal/data/entity"
	"catalog-api/internal/data/repository"
	"catalog-api/internal/dto/request"
	"catalog-api/internal/dto/response"
	"catalog-api/pkg/database"
	"catalog-api/pkg/utils"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

type CategoryService interface {
	Create(ctx context.Context, req *request.CategoryCreateRequest) (*response.CategoryResponse, error)
	FindAll(ctx context.Context, page request.Pagination) (*response.ListResponse[response.CategoryResponse], error)
	FindOne(ctx context.Context, id int64) (*response.CategoryResponse, error)
	Update(ctx context.Context, id int64, req *request.CategoryUpdateRequest) (*response.CategoryResponse, error)
	Remove(ctx context.Context, id int64) error
}

type categoryService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo:  repo,
		cache: cache.New(5*time.Minute, 10*time.Minute),
		log:   log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) Create(ctx context.Context, req *request.CategoryCreateRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	name := utils.NormalizeName(req.Name)

	existing, err := s.repo.Category.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check category exists: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
	}

	now := time.Now()
	category := &entity.Category{
		Name:        name,
		Description: req.Description,
		IsActive:    true,
		Timestamps:  entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
		}
		s.log.Error("Failed to create category", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.cache.Flush()
	s.log.Info("Category created", zap.Int64("category_id", category.ID), zap.String("name", name))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) FindAll(ctx context.Context, page request.Pagination) (*response.ListResponse[response.CategoryResponse], error) {
	page = page.Clamp()

	key := fmt.Sprintf("categories:%d:%d", page.Limit, page.Offset)
	if cached, found := s.cache.Get(key); found {
		return cached.(*response.ListResponse[response.CategoryResponse]), nil
	}

	categories, err := s.repo.Category.FindAll(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	total, err := s.repo.Category.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	result := &response.ListResponse[response.CategoryResponse]{
		Items:  response.CategoriesToResponse(categories),
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}

	s.cache.Set(key, result, cache.DefaultExpiration)
	return result, nil
}

func (s *categoryService) FindOne(ctx context.Context, id int64) (*response.CategoryResponse, error) {
	key := fmt.Sprintf("category:%d", id)
	if cached, found := s.cache.Get(key); found {
		return cached.(*response.CategoryResponse), nil
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
	}

	resp := response.CategoryToResponse(category)
	s.cache.Set(key, &resp, cache.DefaultExpiration)
	return &resp, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, req *request.CategoryUpdateRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
	}

	// Merge-patch with a rename duplicate check
	if req.Name != nil {
		name := utils.NormalizeName(*req.Name)
		if name != category.Name {
			existing, err := s.repo.Category.FindByName(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("check category exists: %w", err)
			}
			if existing != nil {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
			}
		}
		category.Name = name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.UpdatedAt = time.Now()

	if err := s.repo.Category.Update(ctx, category); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, category.Name)
		}
		s.log.Error("Failed to update category", zap.Error(err), zap.Int64("category_id", id))
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.cache.Flush()
	s.log.Info("Category updated", zap.Int64("category_id", id))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) Remove(ctx context.Context, id int64) error {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("%w: category %d", ErrNotFound, id)
	}

	if err := s.repo.Category.Deactivate(ctx, id); err != nil {
		s.log.Error("Failed to deactivate category", zap.Error(err), zap.Int64("category_id", id))
		return fmt.Errorf("deactivate category: %w", err)
	}

	s.cache.Flush()
	return nil
}
