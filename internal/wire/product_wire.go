package wire

import (
	"catalog-api/internal/adaptor"
	"catalog-api/pkg/middleware"
	"catalog-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public catalog reads
	r.Get("/api/products", productHandler.GetProducts)
	r.Get("/api/products/{id}", productHandler.GetProduct)
	r.Get("/api/products/category/{categoryId}", productHandler.GetProductsByCategory)
	r.Get("/api/products/brand/{brandId}", productHandler.GetProductsByBrand)

	// Mutations require authentication
	auth := middleware.AuthJWT(config.JWT, log)
	r.With(auth).Post("/api/products", productHandler.CreateProduct)
	r.With(auth).Put("/api/products/{id}", productHandler.UpdateProduct)
	r.With(auth).Delete("/api/products/{id}", productHandler.DeleteProduct)
}
