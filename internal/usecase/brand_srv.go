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

type BrandService interface {
	Create(ctx context.Context, req *request.BrandCreateRequest) (*response.BrandResponse, error)
	FindAll(ctx context.Context, page request.Pagination) (*response.ListResponse[response.BrandResponse], error)
	FindOne(ctx context.Context, id int64) (*response.BrandResponse, error)
	Update(ctx context.Context, id int64, req *request.BrandUpdateRequest) (*response.BrandResponse, error)
	Remove(ctx context.Context, id int64) error
}

type brandService struct {
	repo *repository.Repository
	// Brands are small reference data read on nearly every catalog
	// page; a short-TTL cache flushed on writes keeps them cheap.
	cache *cache.Cache
	log   *zap.Logger
}

func NewBrandService(repo *repository.Repository, log *zap.Logger) BrandService {
	return &brandService{
		repo:  repo,
		cache: cache.New(5*time.Minute, 10*time.Minute),
		log:   log.With(zap.String("service", "brand")),
	}
}

func (s *brandService) Create(ctx context.Context, req *request.BrandCreateRequest) (*response.BrandResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create brand validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	name := utils.NormalizeName(req.Name)

	existing, err := s.repo.Brand.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check brand exists: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateBrand, name)
	}

	now := time.Now()
	brand := &entity.Brand{
		Name:        name,
		Description: req.Description,
		Logo:        req.Logo,
		IsActive:    true,
		Timestamps:  entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.repo.Brand.Create(ctx, brand); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBrand, name)
		}
		s.log.Error("Failed to create brand", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("create brand: %w", err)
	}

	s.cache.Flush()
	s.log.Info("Brand created", zap.Int64("brand_id", brand.ID), zap.String("name", name))

	resp := response.BrandToResponse(brand)
	return &resp, nil
}

func (s *brandService) FindAll(ctx context.Context, page request.Pagination) (*response.ListResponse[response.BrandResponse], error) {
	page = page.Clamp()

	key := fmt.Sprintf("brands:%d:%d", page.Limit, page.Offset)
	if cached, found := s.cache.Get(key); found {
		return cached.(*response.ListResponse[response.BrandResponse]), nil
	}

	brands, err := s.repo.Brand.FindAll(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}

	total, err := s.repo.Brand.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count brands: %w", err)
	}

	result := &response.ListResponse[response.BrandResponse]{
		Items:  response.BrandsToResponse(brands),
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}

	s.cache.Set(key, result, cache.DefaultExpiration)
	return result, nil
}

func (s *brandService) FindOne(ctx context.Context, id int64) (*response.BrandResponse, error) {
	key := fmt.Sprintf("brand:%d", id)
	if cached, found := s.cache.Get(key); found {
		return cached.(*response.BrandResponse), nil
	}

	brand, err := s.repo.Brand.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find brand: %w", err)
	}
	if brand == nil {
		return nil, fmt.Errorf("%w: brand %d", ErrNotFound, id)
	}

	resp := response.BrandToResponse(brand)
	s.cache.Set(key, &resp, cache.DefaultExpiration)
	return &resp, nil
}

func (s *brandService) Update(ctx context.Context, id int64, req *request.BrandUpdateRequest) (*response.BrandResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update brand validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	brand, err := s.repo.Brand.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find brand: %w", err)
	}
	if brand == nil {
		return nil, fmt.Errorf("%w: brand %d", ErrNotFound, id)
	}

	// Merge-patch with a rename duplicate check
	if req.Name != nil {
		name := utils.NormalizeName(*req.Name)
		if name != brand.Name {
			existing, err := s.repo.Brand.FindByName(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("check brand exists: %w", err)
			}
			if existing != nil {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateBrand, name)
			}
		}
		brand.Name = name
	}
	if req.Description != nil {
		brand.Description = req.Description
	}
	if req.Logo != nil {
		brand.Logo = req.Logo
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}
	brand.UpdatedAt = time.Now()

	if err := s.repo.Brand.Update(ctx, brand); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBrand, brand.Name)
		}
		s.log.Error("Failed to update brand", zap.Error(err), zap.Int64("brand_id", id))
		return nil, fmt.Errorf("update brand: %w", err)
	}

	s.cache.Flush()
	s.log.Info("Brand updated", zap.Int64("brand_id", id))

	resp := response.BrandToResponse(brand)
	return &resp, nil
}

func (s *brandService) Remove(ctx context.Context, id int64) error {
	brand, err := s.repo.Brand.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find brand: %w", err)
	}
	if brand == nil {
		return fmt.Errorf("%w: brand %d", ErrNotFound, id)
	}

	if err := s.repo.Brand.Deactivate(ctx, id); err != nil {
		s.log.Error("Failed to deactivate brand", zap.Error(err), zap.Int64("brand_id", id))
		return fmt.Errorf("deactivate brand: %w", err)
	}

	s.cache.Flush()
	return nil
}
