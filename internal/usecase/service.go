package usecase

import (
	"catalog-api/internal/data/repository"
	"catalog-api/internal/imagestore"
	"catalog-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Product  ProductService
	Brand    BrandService
	Category CategoryService
}

func NewService(repo *repository.Repository, images imagestore.Store, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo, log),
		Product:  NewProductService(repo, images, log),
		Brand:    NewBrandService(repo, log),
		Category: NewCategoryService(repo, log),
	}
}
