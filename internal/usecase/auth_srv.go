package usecase

import (
	"context"
	"fmt"
	"time"

	"catalog-api/internal/data/entity"
	"catalog-api/internal/data/repository"
	"catalog-api/internal/dto/request"
	"catalog-api/internal/dto/response"
	"catalog-api/pkg/database"
	"catalog-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Normalize before any lookup or write; the unique indexes
	// enforce the same invariant underneath.
	email := utils.NormalizeEmail(req.Email)
	username := utils.NormalizeUsername(req.Username)

	// 3. Duplicate pre-check, differentiating which field collided
	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailRegistered
	}

	existingUser, err = s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUsernameTaken
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 5. Create user entity
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		IsActive:     true,
		Roles:        []string{entity.RoleUser},
		Timestamps:   entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	// 6. Save user; a lost race against the pre-check surfaces as a
	// unique violation and is translated, not treated as internal.
	if err := s.repo.User.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, s.classifyUserConflict(err)
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	// 7. Issue token pair for the new user
	tokens, err := s.generateTokenPair(user.ID)
	if err != nil {
		s.log.Error("Failed to issue tokens after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		User:         response.UserToResponse(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email, opting into the password projection
	email := utils.NormalizeEmail(req.Email)
	user, err := s.repo.User.FindByEmailWithPassword(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 3. Unknown email and wrong password return the same error
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	// 4. Check if user is active
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrAccountInactive
	}

	// 5. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 6. Record last login, best-effort: a failed write must not
	// block an otherwise valid login.
	now := time.Now()
	if err := s.repo.User.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn("Failed to update last login",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	} else {
		user.LastLoginAt = &now
	}

	// 7. Issue fresh token pair
	tokens, err := s.generateTokenPair(user.ID)
	if err != nil {
		s.log.Error("Failed to issue tokens after login",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.AuthResponse{
		User:         response.UserToResponse(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error) {
	// 1. Verify against the refresh secret. Expired, tampered and
	// malformed tokens all fail the same way.
	userIDStr, err := utils.VerifyToken(refreshToken, s.config.JWT.RefreshSecret)
	if err != nil {
		s.log.Warn("Refresh token rejected", zap.Error(err))
		return nil, ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		s.log.Warn("Refresh token subject is not a UUID", zap.String("subject", userIDStr))
		return nil, ErrInvalidRefreshToken
	}

	// 2. Re-fetch the user; missing or inactive collapses to the
	// same error as a bad token.
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for refresh",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !user.IsActive {
		s.log.Warn("Refresh for missing or inactive user", zap.String("user_id", userID.String()))
		return nil, ErrInvalidRefreshToken
	}

	// 3. Rotate both tokens, not just access
	tokens, err := s.generateTokenPair(user.ID)
	if err != nil {
		s.log.Error("Failed to rotate tokens",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.log.Info("Tokens refreshed", zap.String("user_id", user.ID.String()))

	return tokens, nil
}

// ==================== HELPER METHODS ====================

// generateTokenPair signs a new access/refresh pair with their
// disjoint secrets. Payload is the user ID only.
func (s *authService) generateTokenPair(userID uuid.UUID) (*response.TokenPairResponse, error) {
	accessTTL := time.Duration(s.config.JWT.AccessExpiryHours) * time.Hour
	refreshTTL := time.Duration(s.config.JWT.RefreshExpiryHours) * time.Hour

	accessToken, err := utils.GenerateToken(userID.String(), s.config.JWT.AccessSecret, accessTTL)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken, err := utils.GenerateToken(userID.String(), s.config.JWT.RefreshSecret, refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &response.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// classifyUserConflict names the colliding field from the violated
// constraint when the pre-check lost the race.
func (s *authService) classifyUserConflict(err error) error {
	switch database.ConstraintName(err) {
	case "users_email_key":
		return ErrEmailRegistered
	case "users_username_key":
		return ErrUsernameTaken
	default:
		return ErrDuplicateUser
	}
}
