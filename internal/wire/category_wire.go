package wire

import (
	"catalog-api/internal/adaptor"
	"catalog-api/pkg/middleware"
	"catalog-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCategory(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public reads
	r.Get("/api/categories", categoryHandler.GetCategories)
	r.Get("/api/categories/{id}", categoryHandler.GetCategory)

	// Mutations require authentication
	auth := middleware.AuthJWT(config.JWT, log)
	r.With(auth).Post("/api/categories", categoryHandler.CreateCategory)
	r.With(auth).Put("/api/categories/{id}", categoryHandler.UpdateCategory)
	r.With(auth).Delete("/api/categories/{id}", categoryHandler.DeleteCategory)
}
