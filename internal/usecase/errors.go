package usecase

import "errors"

// Domain error sentinels. Handlers translate them to HTTP statuses
// with errors.Is; anything not listed here is logged and surfaced as
// an opaque internal error.
var (
	// Registration conflicts, differentiated by field.
	ErrEmailRegistered = errors.New("email already registered")
	ErrUsernameTaken   = errors.New("username already taken")
	// Fallback when a lost insert race cannot name the field.
	ErrDuplicateUser = errors.New("user already exists")

	// Login failures. Unknown email and wrong password share one
	// sentinel so responses cannot be used for user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")

	// Refresh failures all collapse to one error.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

	ErrNotFound          = errors.New("not found")
	ErrDuplicateProduct  = errors.New("product already exists")
	ErrDuplicateBrand    = errors.New("brand already exists")
	ErrDuplicateCategory = errors.New("category already exists")

	ErrImageUpload = errors.New("image upload failed")
	ErrValidation  = errors.New("validation failed")
)
