package usecase

import (
	"context"
	"time"

	"catalog-api/internal/data/entity"
	"catalog-api/internal/data/repository"

	"github.com/google/uuid"
)

// Function-field fakes: tests set only the methods the path under
// test touches, the rest return zero values.

type fakeUserRepo struct {
	createFn                  func(ctx context.Context, user *entity.User) error
	findByIDFn                func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn             func(ctx context.Context, email string) (*entity.User, error)
	findByEmailWithPasswordFn func(ctx context.Context, email string) (*entity.User, error)
	findByUsernameFn          func(ctx context.Context, username string) (*entity.User, error)
	updateLastLoginFn         func(ctx context.Context, id uuid.UUID, at time.Time) error
	updateFn                  func(ctx context.Context, user *entity.User) error
	updatePasswordFn          func(ctx context.Context, id uuid.UUID, hash string) error
	findAllFn                 func(ctx context.Context, limit, offset int) ([]*entity.User, error)
	countAllFn                func(ctx context.Context) (int64, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmailWithPassword(ctx context.Context, email string) (*entity.User, error) {
	if f.findByEmailWithPasswordFn != nil {
		return f.findByEmailWithPasswordFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.findByUsernameFn != nil {
		return f.findByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if f.updateLastLoginFn != nil {
		return f.updateLastLoginFn(ctx, id, at)
	}
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	if f.updatePasswordFn != nil {
		return f.updatePasswordFn(ctx, id, hash)
	}
	return nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, limit, offset)
	}
	return nil, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	if f.countAllFn != nil {
		return f.countAllFn(ctx)
	}
	return 0, nil
}

type fakeProductRepo struct {
	createFn     func(ctx context.Context, product *entity.Product) error
	findByIDFn   func(ctx context.Context, id int64) (*entity.Product, error)
	existsFn     func(ctx context.Context, name string, brandID *int64, excludeID int64) (bool, error)
	findAllFn    func(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error)
	countAllFn   func(ctx context.Context, filter repository.ProductFilter) (int64, error)
	updateFn     func(ctx context.Context, product *entity.Product) error
	deactivateFn func(ctx context.Context, id int64) error
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if f.createFn != nil {
		return f.createFn(ctx, product)
	}
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeProductRepo) Exists(ctx context.Context, name string, brandID *int64, excludeID int64) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, name, brandID, excludeID)
	}
	return false, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter, limit, offset)
	}
	return nil, nil
}

func (f *fakeProductRepo) CountAll(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	if f.countAllFn != nil {
		return f.countAllFn(ctx, filter)
	}
	return 0, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, product)
	}
	return nil
}

func (f *fakeProductRepo) Deactivate(ctx context.Context, id int64) error {
	if f.deactivateFn != nil {
		return f.deactivateFn(ctx, id)
	}
	return nil
}

type fakeBrandRepo struct {
	createFn     func(ctx context.Context, brand *entity.Brand) error
	findByIDFn   func(ctx context.Context, id int64) (*entity.Brand, error)
	findByNameFn func(ctx context.Context, name string) (*entity.Brand, error)
	findAllFn    func(ctx context.Context, limit, offset int) ([]*entity.Brand, error)
	countAllFn   func(ctx context.Context) (int64, error)
	updateFn     func(ctx context.Context, brand *entity.Brand) error
	deactivateFn func(ctx context.Context, id int64) error
}

func (f *fakeBrandRepo) Create(ctx context.Context, brand *entity.Brand) error {
	if f.createFn != nil {
		return f.createFn(ctx, brand)
	}
	return nil
}

func (f *fakeBrandRepo) FindByID(ctx context.Context, id int64) (*entity.Brand, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeBrandRepo) FindByName(ctx context.Context, name string) (*entity.Brand, error) {
	if f.findByNameFn != nil {
		return f.findByNameFn(ctx, name)
	}
	return nil, nil
}

func (f *fakeBrandRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Brand, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, limit, offset)
	}
	return nil, nil
}

func (f *fakeBrandRepo) CountAll(ctx context.Context) (int64, error) {
	if f.countAllFn != nil {
		return f.countAllFn(ctx)
	}
	return 0, nil
}

func (f *fakeBrandRepo) Update(ctx context.Context, brand *entity.Brand) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, brand)
	}
	return nil
}

func (f *fakeBrandRepo) Deactivate(ctx context.Context, id int64) error {
	if f.deactivateFn != nil {
		return f.deactivateFn(ctx, id)
	}
	return nil
}

type fakeImageStore struct {
	uploadFn func(ctx context.Context, data []byte, filename string) (string, error)
	deleteFn func(ctx context.Context, publicID string) error

	uploads []string
	deletes []string
}

func (f *fakeImageStore) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	f.uploads = append(f.uploads, filename)
	if f.uploadFn != nil {
		return f.uploadFn(ctx, data, filename)
	}
	return "https://images.example.com/v1700000000/products/" + filename, nil
}

func (f *fakeImageStore) Delete(ctx context.Context, publicID string) error {
	f.deletes = append(f.deletes, publicID)
	if f.deleteFn != nil {
		return f.deleteFn(ctx, publicID)
	}
	return nil
}
