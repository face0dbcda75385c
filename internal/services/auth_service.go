package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coursehub/backend/internal/auth"
	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserRepository defines methods for user data access
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the user.
	//
	// Returns the user and repositories.ErrUserNotFound if absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email
	//
	// "ctx" is the context for the request.
	// "email" is the email of the user.
	//
	// Returns the user and repositories.ErrUserNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create appends a new user
	//
	// "ctx" is the context for the request.
	// "user" is the user to create.
	//
	// Returns an error if any.
	Create(ctx context.Context, user *models.User) error
}

type authService struct {
	userRepo UserRepository
	tokens   *auth.TokenGenerator
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokens *auth.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login performs the mock login: the caller picks a name, email and role and
// receives a session user plus JWT tokens. There is no credential check;
// the portal does not do real authentication.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be student or admin", ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		user = &models.User{
			ID:    uuid.NewString(),
			Name:  name,
			Email: email,
			Role:  req.Role,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		s.logger.Info("user created",
			zap.String("user_id", user.ID),
			zap.String("role", string(user.Role)),
		)
	}

	accessToken, refreshToken, err := s.tokens.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &models.LoginResponse{
		User:         *user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetUser resolves a user by ID
func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
