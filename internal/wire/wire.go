package wire

import (
	"net/http"

	"catalog-api/internal/adaptor"
	"catalog-api/internal/data/repository"
	"catalog-api/internal/imagestore"
	"catalog-api/internal/usecase"
	"catalog-api/pkg/middleware"
	"catalog-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(repo *repository.Repository, images imagestore.Store, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, images, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, config, logger)
	wireProduct(r, handler.Product, config, logger)
	wireBrand(r, handler.Brand, config, logger)
	wireCategory(r, handler.Category, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
