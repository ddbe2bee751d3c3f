package services

import (
	"context"
	"time"

	"github.com/balanza-app/balanza/internal/core/domain"
	"github.com/balanza-app/balanza/internal/dto"
)

// UserSvcFacade defines user management and credential verification.
type UserSvcFacade interface {
	// CreateUser persists a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate verifies username/password and returns the user.
	// Returns apperrors.ErrForbidden on bad credentials.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// TokenSvcFacade issues access tokens for authenticated users.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user.
	GenerateAccessToken(userID string) (token string, expiresAt time.Time, err error)
}
