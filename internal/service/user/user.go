package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// List returns every user ordered by full name.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	if _, err := s.auth.Actor(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Get returns one user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if _, err := s.auth.Actor(ctx); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return user, nil
}

// SetRole changes the role of a user (admin only). Users are not an audited
// entity, so no change log row is written.
func (s *Service) SetRole(ctx context.Context, targetUserID uuid.UUID, input SetRoleInput) (*domain.User, error) {
	actor, err := s.auth.Authorize(ctx, domain.CapUserSetRole)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	role, _ := domain.ParseUserRole(input.Role)

	// Prevent admin from demoting themselves.
	if actor.UserID == targetUserID && role != domain.UserRoleAdmin {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	user, err := s.users.SetRole(ctx, targetUserID, role)
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)
	return user, nil
}

// Promote sets the role of the user with the given email, creating the
// user when FullName is given and no such user exists. It performs no
// authorization and is meant for operator tooling only.
func (s *Service) Promote(ctx context.Context, input PromoteInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	role, _ := domain.ParseUserRole(input.Role)
	email := strings.TrimSpace(input.Email)

	user, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound) && strings.TrimSpace(input.FullName) != "":
		user, err = s.users.Create(ctx, domain.User{
			Email:    email,
			FullName: strings.TrimSpace(input.FullName),
			Role:     role,
		})
		if err != nil {
			return nil, fmt.Errorf("user.Promote: create: %w", err)
		}
		s.log.InfoContext(ctx, "user created",
			slog.String("target_user_id", user.ID.String()),
			slog.String("role", role.String()),
		)
		return user, nil
	case err != nil:
		return nil, fmt.Errorf("user.Promote: %w", err)
	}

	user, err = s.users.SetRole(ctx, user.ID, role)
	if err != nil {
		return nil, fmt.Errorf("user.Promote: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", user.ID.String()),
		slog.String("new_role", role.String()),
	)
	return user, nil
}
