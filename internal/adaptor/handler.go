package adaptor

import (
	"catalog-api/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Product  *ProductHandler
	Brand    *BrandHandler
	Category *CategoryHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Product:  NewProductHandler(service.Product, log),
		Brand:    NewBrandHandler(service.Brand, log),
		Category: NewCategoryHandler(service.Category, log),
	}
}
