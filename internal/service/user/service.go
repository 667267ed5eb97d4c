// Package user exposes the people tasks are assigned to and manages their
// roles. Accounts themselves are provisioned elsewhere.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// authorizer resolves the caller and checks capabilities.
type authorizer interface {
	Authorize(ctx context.Context, c domain.Capability) (domain.Actor, error)
	Actor(ctx context.Context) (domain.Actor, error)
}

// Service implements user listing and role management.
type Service struct {
	log   *slog.Logger
	users userRepo
	auth  authorizer
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, auth authorizer) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		auth:  auth,
	}
}
