package middleware

import (
	"net/http"
	"strings"

	"catalog-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthJWT validates the bearer access token and puts the user ID into
// the request context. The token carries only the user ID; activity
// checks happen in the services that care.
func AuthJWT(jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			userIDStr, err := utils.VerifyToken(parts[1], jwtConfig.AccessSecret)
			if err != nil {
				logger.Warn("Invalid access token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				logger.Warn("Access token subject is not a UUID", zap.String("subject", userIDStr))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
