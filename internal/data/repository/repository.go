package repository

import (
	"catalog-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Product  ProductRepository
	Brand    BrandRepository
	Category CategoryRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Product:  NewProductRepository(db, log),
		Brand:    NewBrandRepository(db, log),
		Category: NewCategoryRepository(db, log),
	}
}
