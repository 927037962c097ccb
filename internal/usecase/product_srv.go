package usecase

import (
	"context"
	"fmt"
	"time"

	"catalog-api/internal/data/entity"
	"catalog-api/internal/data/repository"
	"catalog-api/internal/dto/request"
	"catalog-api/internal/dto/response"
	"catalog-api/internal/imagestore"
	"catalog-api/pkg/database"
	"catalog-api/pkg/utils"

	"go.uber.org/zap"
)

type ProductService interface {
	Create(ctx context.Context, req *request.ProductCreateRequest, image *request.ImageUpload) (*response.ProductResponse, error)
	FindAll(ctx context.Context, filter *request.ProductFilterRequest, page request.Pagination) (*response.ListResponse[response.ProductResponse], error)
	FindOne(ctx context.Context, id int64) (*response.ProductResponse, error)
	Update(ctx context.Context, id int64, req *request.ProductUpdateRequest, image *request.ImageUpload) (*response.ProductResponse, error)
	Remove(ctx context.Context, id int64) error
	FindByCategory(ctx context.Context, categoryID int64, page request.Pagination) (*response.ListResponse[response.ProductResponse], error)
	FindByBrand(ctx context.Context, brandID int64, page request.Pagination) (*response.ListResponse[response.ProductResponse], error)
}

type productService struct {
	repo   *repository.Repository
	images imagestore.Store
	log    *zap.Logger
}

func NewProductService(
	repo *repository.Repository,
	images imagestore.Store,
	log *zap.Logger,
) ProductService {
	return &productService{
		repo:   repo,
		images: images,
		log:    log.With(zap.String("service", "product")),
	}
}

func (s *productService) Create(ctx context.Context, req *request.ProductCreateRequest, image *request.ImageUpload) (*response.ProductResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Normalize name; uniqueness is scoped to (name, brand)
	name := utils.NormalizeName(req.Name)

	exists, err := s.repo.Product.Exists(ctx, name, req.BrandID, 0)
	if err != nil {
		return nil, fmt.Errorf("check product exists: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, name)
	}

	// 3. Upload the photo first; a failed upload aborts creation so
	// no row ends up referencing a missing image.
	var photo *string
	if image != nil {
		url, err := s.images.Upload(ctx, image.Data, image.Filename)
		if err != nil {
			s.log.Error("Image upload failed", zap.Error(err), zap.String("name", name))
			return nil, fmt.Errorf("%w: %v", ErrImageUpload, err)
		}
		photo = &url
	}

	// 4. Persist
	now := time.Now()
	product := &entity.Product{
		Name:       name,
		Price:      req.Price,
		Photo:      photo,
		CategoryID: req.CategoryID,
		BrandID:    req.BrandID,
		IsActive:   true,
		Timestamps: entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		// The uploaded image would be orphaned; reclaim it.
		s.deleteImage(photo)

		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, name)
		}
		if database.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: referenced brand or category does not exist", ErrValidation)
		}
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))

	// 5. Reload with brand/category attached
	return s.findOne(ctx, product.ID)
}

func (s *productService) FindAll(ctx context.Context, filter *request.ProductFilterRequest, page request.Pagination) (*response.ListResponse[response.ProductResponse], error) {
	if errs := utils.ValidateStruct(filter); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	page = page.Clamp()

	repoFilter := repository.ProductFilter{
		CategoryID: filter.CategoryID,
		BrandID:    filter.BrandID,
		MinPrice:   filter.MinPrice,
		MaxPrice:   filter.MaxPrice,
		IsActive:   filter.IsActive,
	}
	if filter.Name != nil {
		name := utils.NormalizeName(*filter.Name)
		repoFilter.Name = &name
	}

	return s.list(ctx, repoFilter, page)
}

func (s *productService) FindOne(ctx context.Context, id int64) (*response.ProductResponse, error) {
	return s.findOne(ctx, id)
}

func (s *productService) Update(ctx context.Context, id int64, req *request.ProductUpdateRequest, image *request.ImageUpload) (*response.ProductResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Load current record
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
	}

	// 3. Duplicate check on the effective (name, brand) after the
	// patch, excluding this row
	newName := product.Name
	if req.Name != nil {
		newName = utils.NormalizeName(*req.Name)
	}
	newBrand := product.BrandID
	if req.BrandID != nil {
		newBrand = req.BrandID
	}

	if newName != product.Name || req.BrandID != nil {
		exists, err := s.repo.Product.Exists(ctx, newName, newBrand, id)
		if err != nil {
			return nil, fmt.Errorf("check product exists: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, newName)
		}
	}

	// 4. Replace the photo: upload the new image first, then delete
	// the old one best-effort. A failed delete never blocks the
	// update.
	oldPhoto := product.Photo
	if image != nil {
		url, err := s.images.Upload(ctx, image.Data, image.Filename)
		if err != nil {
			s.log.Error("Image upload failed", zap.Error(err), zap.Int64("product_id", id))
			return nil, fmt.Errorf("%w: %v", ErrImageUpload, err)
		}
		product.Photo = &url

		s.deleteImage(oldPhoto)
	}

	// 5. Merge-patch: only supplied fields overwrite
	product.Name = newName
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.BrandID != nil {
		product.BrandID = req.BrandID
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, newName)
		}
		if database.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: referenced brand or category does not exist", ErrValidation)
		}
		s.log.Error("Failed to update product", zap.Error(err), zap.Int64("product_id", id))
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.Info("Product updated", zap.Int64("product_id", id))

	return s.findOne(ctx, id)
}

// Remove soft-deletes. Calling it again on an already inactive
// product succeeds the same way.
func (s *productService) Remove(ctx context.Context, id int64) error {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("%w: product %d", ErrNotFound, id)
	}

	if err := s.repo.Product.Deactivate(ctx, id); err != nil {
		s.log.Error("Failed to deactivate product", zap.Error(err), zap.Int64("product_id", id))
		return fmt.Errorf("deactivate product: %w", err)
	}

	return nil
}

// FindByCategory lists one category's products. Inactive products
// never appear in scoped views, regardless of caller intent.
func (s *productService) FindByCategory(ctx context.Context, categoryID int64, page request.Pagination) (*response.ListResponse[response.ProductResponse], error) {
	active := true
	filter := repository.ProductFilter{
		CategoryID: &categoryID,
		IsActive:   &active,
	}

	return s.list(ctx, filter, page.Clamp())
}

// FindByBrand mirrors FindByCategory for brands.
func (s *productService) FindByBrand(ctx context.Context, brandID int64, page request.Pagination) (*response.ListResponse[response.ProductResponse], error) {
	active := true
	filter := repository.ProductFilter{
		BrandID:  &brandID,
		IsActive: &active,
	}

	return s.list(ctx, filter, page.Clamp())
}

// ==================== HELPER METHODS ====================

func (s *productService) findOne(ctx context.Context, id int64) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) list(ctx context.Context, filter repository.ProductFilter, page request.Pagination) (*response.ListResponse[response.ProductResponse], error) {
	products, err := s.repo.Product.FindAll(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	total, err := s.repo.Product.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	return &response.ListResponse[response.ProductResponse]{
		Items:  response.ProductsToResponse(products),
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// deleteImage reclaims a stored image best-effort; failures are
// logged and swallowed.
func (s *productService) deleteImage(photoURL *string) {
	if photoURL == nil {
		return
	}

	publicID := imagestore.ExtractPublicID(*photoURL)
	if publicID == "" {
		s.log.Warn("Cannot derive storage key from photo URL", zap.String("url", *photoURL))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.images.Delete(ctx, publicID); err != nil {
		s.log.Warn("Failed to delete image",
			zap.Error(err), zap.String("public_id", publicID))
	}
}
