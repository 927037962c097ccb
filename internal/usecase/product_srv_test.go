package usecase

import (
	"context"
	"testing"
	"time"

	"catalog-api/internal/data/entity"
	"catalog-api/internal/data/repository"
	"catalog-api/internal/dto/request"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProductService(products *fakeProductRepo, images *fakeImageStore) ProductService {
	repo := &repository.Repository{Product: products}
	return NewProductService(repo, images, zap.NewNop())
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool          { return &v }
func strPtr(v string) *string       { return &v }

func storedProduct(id int64) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:         id,
		Name:       "wireless earbuds",
		Price:      59.99,
		CategoryID: int64Ptr(2),
		BrandID:    int64Ptr(3),
		IsActive:   true,
		Timestamps: entity.Timestamps{CreatedAt: now, UpdatedAt: now},
		Category:   &entity.Category{ID: 2, Name: "electronics"},
		Brand:      &entity.Brand{ID: 3, Name: "contoso"},
	}
}

func TestCreateProduct(t *testing.T) {
	var inserted *entity.Product
	products := &fakeProductRepo{
		createFn: func(ctx context.Context, product *entity.Product) error {
			inserted = product
			product.ID = 42
			return nil
		},
		findByIDFn: func(ctx context.Context, id int64) (*entity.Product, error) {
			p := storedProduct(id)
			p.Photo = inserted.Photo
			return p, nil
		},
	}
	images := &fakeImageStore{}
	svc := newProductService(products, images)

	resp, err := svc.Create(context.Background(), &request.ProductCreateRequest{
		Name:       "  Wireless   Earbuds ",
		Price:      59.99,
		CategoryID: int64Ptr(2),
		BrandID:    int64Ptr(3),
	}, &request.ImageUpload{Filename: "earbuds.png", ContentType: "image/png", Data: []byte{1}})
	require.NoError(t, err)

	// Name is lowercased with whitespace collapsed
	assert.Equal(t, "wireless earbuds", inserted.Name)
	assert.True(t, inserted.IsActive)

	// Photo was uploaded before the insert and stored on the row
	require.Len(t, images.uploads, 1)
	require.NotNil(t, inserted.Photo)
	assert.Equal(t, *inserted.Photo, *resp.Photo)

	// Returned with brand and category attached
	assert.Equal(t, int64(42), resp.ID)
	require.NotNil(t, resp.Category)
	assert.Equal(t, "electronics", resp.Category.Name)
	require.NotNil(t, resp.Brand)
	assert.Equal(t, "contoso", resp.Brand.Name)
}

func TestCreateProductDuplicate(t *testing.T) {
	products := &fakeProductRepo{
		existsFn: func(ctx context.Context, name string, brandID *int64, excludeID int64) (bool, error) {
			return true, nil
		},
	}
	images := &fakeImageStore{}
	svc := newProductService(products, images)

	_, err := svc.Create(context.Background(), &request.ProductCreateRequest{
		Name:    "wireless earbuds",
		Price:   59.99,
		BrandID: int64Ptr(3),
	}, &request.ImageUpload{Filename: "earbuds.png", Data: []byte{1}})
	assert.ErrorIs(t, err, ErrDuplicateProduct)

	// Nothing is uploaded for a rejected create
	assert.Empty(t, images.uploads)
}

func TestCreateProductInsertFailureReclaimsImage(t *testing.T) {
	products := &fakeProductRepo{
		createFn: func(ctx context.Context, product *entity.Product) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "products_name_brand_key"}
		},
	}
	images := &fakeImageStore{}
	svc := newProductService(products, images)

	_, err := svc.Create(context.Background(), &request.ProductCreateRequest{
		Name:  "wireless earbuds",
		Price: 59.99,
	}, &request.ImageUpload{Filename: "earbuds.png", Data: []byte{1}})
	assert.ErrorIs(t, err, ErrDuplicateProduct)

	// The already-uploaded image is deleted again
	require.Len(t, images.deletes, 1)
	assert.Equal(t, "products/earbuds", images.deletes[0])
}

func TestCreateProductBrandlessRaceLoser(t *testing.T) {
	// Two concurrent brand-less creates both pass the pre-check; the
	// loser's insert trips the partial index and surfaces as a duplicate.
	products := &fakeProductRepo{
		existsFn: func(ctx context.Context, name string, brandID *int64, excludeID int64) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, product *entity.Product) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "products_name_no_brand_key"}
		},
	}
	svc := newProductService(products, &fakeImageStore{})

	_, err := svc.Create(context.Background(), &request.ProductCreateRequest{
		Name:  "desk lamp",
		Price: 19.99,
	}, nil)
	assert.ErrorIs(t, err, ErrDuplicateProduct)
}

func TestCreateProductUnknownBrand(t *testing.T) {
	products := &fakeProductRepo{
		createFn: func(ctx context.Context, product *entity.Product) error {
			return &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
		},
	}
	svc := newProductService(products, &fakeImageStore{})

	_, err := svc.Create(context.Background(), &request.ProductCreateRequest{
		Name:    "wireless earbuds",
		Price:   59.99,
		BrandID: int64Ptr(999),
	}, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFindAllFilters(t *testing.T) {
	var gotFilter repository.ProductFilter
	var gotLimit, gotOffset int
	products := &fakeProductRepo{
		findAllFn: func(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
			gotFilter, gotLimit, gotOffset = filter, limit, offset
			return []*entity.Product{storedProduct(1)}, nil
		},
		countAllFn: func(ctx context.Context, filter repository.ProductFilter) (int64, error) {
			return 7, nil
		},
	}
	svc := newProductService(products, &fakeImageStore{})

	resp, err := svc.FindAll(context.Background(), &request.ProductFilterRequest{
		Name:     strPtr("  Ear Buds "),
		MinPrice: float64Ptr(10),
		MaxPrice: float64Ptr(100),
		IsActive: boolPtr(true),
	}, request.Pagination{Limit: 500, Offset: -3})
	require.NoError(t, err)

	// Name filter is normalized like stored names
	require.NotNil(t, gotFilter.Name)
	assert.Equal(t, "ear buds", *gotFilter.Name)
	assert.Equal(t, float64(10), *gotFilter.MinPrice)
	assert.Equal(t, float64(100), *gotFilter.MaxPrice)

	// Pagination is clamped to valid bounds
	assert.Equal(t, request.MaxLimit, gotLimit)
	assert.Equal(t, 0, gotOffset)

	assert.Equal(t, int64(7), resp.Total)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, request.MaxLimit, resp.Limit)
}

func TestFindOneNotFound(t *testing.T) {
	svc := newProductService(&fakeProductRepo{}, &fakeImageStore{})

	_, err := svc.FindOne(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProductMergePatch(t *testing.T) {
	var updated *entity.Product
	products := &fakeProductRepo{
		findByIDFn: func(ctx context.Context, id int64) (*entity.Product, error) {
			return storedProduct(id), nil
		},
		updateFn: func(ctx context.Context, product *entity.Product) error {
			updated = product
			return nil
		},
	}
	svc := newProductService(products, &fakeImageStore{})

	_, err := svc.Update(context.Background(), 1, &request.ProductUpdateRequest{
		Price: float64Ptr(49.99),
	}, nil)
	require.NoError(t, err)

	// Only the supplied field changes
	assert.Equal(t, 49.99, updated.Price)
	assert.Equal(t, "wireless earbuds", updated.Name)
	assert.Equal(t, int64Ptr(3), updated.BrandID)
	assert.True(t, updated.IsActive)
}

func TestUpdateProductRenameConflict(t *testing.T) {
	products := &fakeProductRepo{
		findByIDFn: func(ctx context.Context, id int64) (*entity.Product, error) {
			return storedProduct(id), nil
		},
		existsFn: func(ctx context.Context, name string, brandID *int64, excludeID int64) (bool, error) {
			assert.Equal(t, "noise cancelling buds", name)
			assert.Equal(t, int64(1), excludeID)
			return true, nil
		},
	}
	svc := newProductService(products, &fakeImageStore{})

	_, err := svc.Update(context.Background(), 1, &request.ProductUpdateRequest{
		Name: strPtr("Noise Cancelling Buds"),
	}, nil)
	assert.ErrorIs(t, err, ErrDuplicateProduct)
}

func TestUpdateProductReplacesPhoto(t *testing.T) {
	existing := storedProduct(1)
	existing.Photo = strPtr("https://images.example.com/v1690000000/products/old-shot.png")

	var updated *entity.Product
	products := &fakeProductRepo{
		findByIDFn: func(ctx context.Context, id int64) (*entity.Product, error) {
			if updated != nil {
				return updated, nil
			}
			return existing, nil
		},
		updateFn: func(ctx context.Context, product *entity.Product) error {
			updated = product
			return nil
		},
	}
	images := &fakeImageStore{}
	svc := newProductService(products, images)

	_, err := svc.Update(context.Background(), 1, &request.ProductUpdateRequest{}, &request.ImageUpload{
		Filename: "new-shot.png", ContentType: "image/png", Data: []byte{1},
	})
	require.NoError(t, err)

	// New image uploaded, old one reclaimed
	require.Len(t, images.uploads, 1)
	require.Len(t, images.deletes, 1)
	assert.Equal(t, "products/old-shot", images.deletes[0])
	require.NotNil(t, updated.Photo)
	assert.Contains(t, *updated.Photo, "new-shot.png")
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := newProductService(&fakeProductRepo{}, &fakeImageStore{})

	_, err := svc.Update(context.Background(), 404, &request.ProductUpdateRequest{
		Price: float64Ptr(1),
	}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveProduct(t *testing.T) {
	var deactivated int64
	active := true
	products := &fakeProductRepo{
		findByIDFn: func(ctx context.Context, id int64) (*entity.Product, error) {
			p := storedProduct(id)
			p.IsActive = active
			return p, nil
		},
		deactivateFn: func(ctx context.Context, id int64) error {
			deactivated = id
			active = false
			return nil
		},
	}
	svc := newProductService(products, &fakeImageStore{})

	err := svc.Remove(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deactivated)

	// Removing an already-inactive product succeeds again
	err = svc.Remove(context.Background(), 5)
	assert.NoError(t, err)
}

func TestRemoveProductNotFound(t *testing.T) {
	svc := newProductService(&fakeProductRepo{}, &fakeImageStore{})

	err := svc.Remove(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByCategoryForcesActive(t *testing.T) {
	var gotFilter repository.ProductFilter
	products := &fakeProductRepo{
		findAllFn: func(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	svc := newProductService(products, &fakeImageStore{})

	_, err := svc.FindByCategory(context.Background(), 2, request.DefaultPagination())
	require.NoError(t, err)

	// Scoped views never include inactive products
	require.NotNil(t, gotFilter.IsActive)
	assert.True(t, *gotFilter.IsActive)
	require.NotNil(t, gotFilter.CategoryID)
	assert.Equal(t, int64(2), *gotFilter.CategoryID)
}

func TestFindByBrandForcesActive(t *testing.T) {
	var gotFilter repository.ProductFilter
	products := &fakeProductRepo{
		findAllFn: func(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	svc := newProductService(products, &fakeImageStore{})

	_, err := svc.FindByBrand(context.Background(), 3, request.DefaultPagination())
	require.NoError(t, err)

	require.NotNil(t, gotFilter.IsActive)
	assert.True(t, *gotFilter.IsActive)
	require.NotNil(t, gotFilter.BrandID)
	assert.Equal(t, int64(3), *gotFilter.BrandID)
}
