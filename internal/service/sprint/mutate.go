package sprint

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
)

// Create adds a dated sprint to an existing project with the next sprint
// number of that project.
func (s *Service) Create(ctx context.Context, input CreateSprintInput) (*domain.Sprint, error) {
	actor, err := s.auth.Authorize(ctx, domain.CapSprintCreate)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	start, _ := domain.ParseDate(input.StartDate)
	end, _ := domain.ParseDate(input.EndDate)
	if end.Before(start) {
		return nil, domain.NewValidationError("end_date", "must not be before start_date")
	}
	status := domain.SprintStatusPlanned
	if input.Status != nil && strings.TrimSpace(*input.Status) != "" {
		status = domain.SprintStatus(strings.ToLower(strings.TrimSpace(*input.Status)))
	}

	var created *domain.Sprint
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.projects.GetByID(txCtx, input.ProjectID); err != nil {
			return fmt.Errorf("get project: %w", err)
		}

		number, err := s.numbers.NextSprintNumber(txCtx, input.ProjectID)
		if err != nil {
			return err
		}

		sp := domain.Sprint{
			ID:           uuid.New(),
			ProjectID:    input.ProjectID,
			SprintNumber: number,
			Name:         strings.TrimSpace(input.Name),
			StartDate:    start,
			EndDate:      end,
			Status:       status,
			Notes:        trimOrNil(input.Notes),
		}
		if err := s.sprints.Create(txCtx, sp); err != nil {
			return fmt.Errorf("create sprint: %w", err)
		}

		created, err = s.sprints.GetByID(txCtx, sp.ID)
		if err != nil {
			return fmt.Errorf("reload sprint: %w", err)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeSprint,
			EntityID:   sp.ID,
			Action:     domain.ChangeActionCreated,
			After:      created,
			Actor:      &actor.UserID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "sprint created",
		slog.String("project_id", created.ProjectID.String()),
		slog.String("sprint_id", created.ID.String()),
		slog.Int("number", created.SprintNumber),
	)
	return created, nil
}

// Update applies a patch to a sprint. Notes given as blank are cleared.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateSprintInput) (*domain.Sprint, error) {
	actor, err := s.auth.Authorize(ctx, domain.CapSprintUpdate)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Sprint
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.sprints.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get sprint: %w", err)
		}

		next := *before
		if input.Name != nil {
			next.Name = strings.TrimSpace(*input.Name)
		}
		if input.StartDate != nil {
			next.StartDate, _ = domain.ParseDate(*input.StartDate)
		}
		if input.EndDate != nil {
			next.EndDate, _ = domain.ParseDate(*input.EndDate)
		}
		if input.Status != nil && strings.TrimSpace(*input.Status) != "" {
			next.Status = domain.SprintStatus(strings.ToLower(strings.TrimSpace(*input.Status)))
		}
		if input.Notes != nil {
			next.Notes = trimOrNil(input.Notes)
		}
		if next.EndDate.Before(next.StartDate) {
			return domain.NewValidationError("end_date", "must not be before start_date")
		}

		if err := s.sprints.Update(txCtx, next); err != nil {
			return fmt.Errorf("update sprint: %w", err)
		}

		updated, err = s.sprints.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("reload sprint: %w", err)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeSprint,
			EntityID:   id,
			Action:     domain.ChangeActionUpdated,
			Before:     before,
			After:      updated,
			Actor:      &actor.UserID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "sprint updated", slog.String("sprint_id", id.String()))
	return updated, nil
}

// Delete removes a sprint; its tasks stay in the project without a sprint.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := s.auth.Authorize(ctx, domain.CapSprintDelete)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.sprints.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get sprint: %w", err)
		}
		if err := s.sprints.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete sprint: %w", err)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeSprint,
			EntityID:   id,
			Action:     domain.ChangeActionDeleted,
			Before:     before,
			Actor:      &actor.UserID,
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "sprint deleted", slog.String("sprint_id", id.String()))
	return nil
}

// Get returns one sprint.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
	if _, err := s.auth.Actor(ctx); err != nil {
		return nil, err
	}
	sp, err := s.sprints.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sprint: %w", err)
	}
	return sp, nil
}

// List returns sprints latest start date first, optionally for one project.
func (s *Service) List(ctx context.Context, projectID *uuid.UUID) ([]domain.Sprint, error) {
	if _, err := s.auth.Actor(ctx); err != nil {
		return nil, err
	}
	sprints, err := s.sprints.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sprints: %w", err)
	}
	if sprints == nil {
		sprints = []domain.Sprint{}
	}
	return sprints, nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
