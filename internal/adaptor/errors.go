package adaptor

import (
	"errors"
	"net/http"

	"catalog-api/internal/usecase"
	"catalog-api/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps usecase sentinel errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrEmailRegistered),
		errors.Is(err, usecase.ErrUsernameTaken),
		errors.Is(err, usecase.ErrDuplicateUser),
		errors.Is(err, usecase.ErrDuplicateProduct),
		errors.Is(err, usecase.ErrDuplicateBrand),
		errors.Is(err, usecase.ErrDuplicateCategory):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrInvalidRefreshToken):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrAccountInactive):
		log.Warn(operation+" failed - account inactive", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrImageUpload):
		log.Error(operation+" failed - image upload", zap.Error(err))
		utils.ResponseInternalError(w, "Image upload failed")

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
