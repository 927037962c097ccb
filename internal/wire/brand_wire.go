package wire

import (
	"catalog-api/internal/adaptor"
	"catalog-api/pkg/middleware"
	"catalog-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBrand(
	r chi.Router,
	brandHandler *adaptor.BrandHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public reads
	r.Get("/api/brands", brandHandler.GetBrands)
	r.Get("/api/brands/{id}", brandHandler.GetBrand)

	// Mutations require authentication
	auth := middleware.AuthJWT(config.JWT, log)
	r.With(auth).Post("/api/brands", brandHandler.CreateBrand)
	r.With(auth).Put("/api/brands/{id}", brandHandler.UpdateBrand)
	r.With(auth).Delete("/api/brands/{id}", brandHandler.DeleteBrand)
}
