package usecase

import (
	"context"
	"testing"
	"time"

	"catalog-api/internal/data/entity"
	"catalog-api/internal/data/repository"
	"catalog-api/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBrandService(brands *fakeBrandRepo) BrandService {
	repo := &repository.Repository{Brand: brands}
	return NewBrandService(repo, zap.NewNop())
}

func storedBrand(id int64) *entity.Brand {
	now := time.Now()
	return &entity.Brand{
		ID:         id,
		Name:       "contoso",
		IsActive:   true,
		Timestamps: entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
}

func TestCreateBrand(t *testing.T) {
	var created *entity.Brand
	brands := &fakeBrandRepo{
		createFn: func(ctx context.Context, brand *entity.Brand) error {
			created = brand
			brand.ID = 3
			return nil
		},
	}
	svc := newBrandService(brands)

	resp, err := svc.Create(context.Background(), &request.BrandCreateRequest{
		Name: "  Contoso  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "contoso", created.Name)
	assert.True(t, created.IsActive)
	assert.Equal(t, int64(3), resp.ID)
}

func TestCreateBrandDuplicate(t *testing.T) {
	brands := &fakeBrandRepo{
		findByNameFn: func(ctx context.Context, name string) (*entity.Brand, error) {
			return storedBrand(3), nil
		},
	}
	svc := newBrandService(brands)

	_, err := svc.Create(context.Background(), &request.BrandCreateRequest{Name: "Contoso"})
	assert.ErrorIs(t, err, ErrDuplicateBrand)
}

func TestFindAllBrandsCaches(t *testing.T) {
	calls := 0
	brands := &fakeBrandRepo{
		findAllFn: func(ctx context.Context, limit, offset int) ([]*entity.Brand, error) {
			calls++
			return []*entity.Brand{storedBrand(3)}, nil
		},
		countAllFn: func(ctx context.Context) (int64, error) {
			return 1, nil
		},
	}
	svc := newBrandService(brands)

	page := request.DefaultPagination()
	first, err := svc.FindAll(context.Background(), page)
	require.NoError(t, err)

	second, err := svc.FindAll(context.Background(), page)
	require.NoError(t, err)

	// Second read is served from cache
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), second.Total)
}

func TestUpdateBrandInvalidatesCache(t *testing.T) {
	listCalls := 0
	brands := &fakeBrandRepo{
		findAllFn: func(ctx context.Context, limit, offset int) ([]*entity.Brand, error) {
			listCalls++
			return []*entity.Brand{storedBrand(3)}, nil
		},
		findByIDFn: func(ctx context.Context, id int64) (*entity.Brand, error) {
			return storedBrand(id), nil
		},
	}
	svc := newBrandService(brands)

	page := request.DefaultPagination()
	_, err := svc.FindAll(context.Background(), page)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), 3, &request.BrandUpdateRequest{
		Description: strPtr("Updated description"),
	})
	require.NoError(t, err)

	// The update flushed the cache, so the next list hits the store
	_, err = svc.FindAll(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, 2, listCalls)
}

func TestBrandRenameConflict(t *testing.T) {
	brands := &fakeBrandRepo{
		findByIDFn: func(ctx context.Context, id int64) (*entity.Brand, error) {
			return storedBrand(id), nil
		},
		findByNameFn: func(ctx context.Context, name string) (*entity.Brand, error) {
			return storedBrand(99), nil
		},
	}
	svc := newBrandService(brands)

	_, err := svc.Update(context.Background(), 3, &request.BrandUpdateRequest{
		Name: strPtr("Northwind"),
	})
	assert.ErrorIs(t, err, ErrDuplicateBrand)
}

func TestRemoveBrandNotFound(t *testing.T) {
	svc := newBrandService(&fakeBrandRepo{})

	err := svc.Remove(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
