package wire

import (
	"catalog-api/internal/adaptor"
	"catalog-api/pkg/middleware"
	"catalog-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))

		r.Get("/", userHandler.GetUsers)
		r.Get("/profile", userHandler.GetProfile)
		r.Put("/profile", userHandler.UpdateProfile)
	})
}
