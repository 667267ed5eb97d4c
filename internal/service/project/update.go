package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
)

// Update applies a patch to a project. Members are replaced only when
// provided; modules listed in the patch are appended.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*domain.Project, error) {
	actor, err := s.auth.Authorize(ctx, domain.CapProjectUpdate)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Project
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, getErr := s.projects.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get project: %w", getErr)
		}

		next, patchErr := applyPatch(*before, input)
		if patchErr != nil {
			return patchErr
		}
		if err := s.projects.Update(txCtx, next); err != nil {
			return fmt.Errorf("update project: %w", err)
		}

		if input.Members != nil {
			if err := s.projects.ReplaceMembers(txCtx, id, compactIDs(*input.Members)); err != nil {
				return fmt.Errorf("replace members: %w", err)
			}
		}
		if err := s.appendModules(txCtx, actor, id, input.Modules); err != nil {
			return err
		}

		updated, getErr = s.projects.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("reload project: %w", getErr)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeProject,
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

	s.log.InfoContext(ctx, "project updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("project_id", id.String()),
	)

	return updated, nil
}

// applyPatch returns p with the non-nil fields of input applied. A blank
// description or date clears the column.
func applyPatch(p domain.Project, input UpdateProjectInput) (domain.Project, error) {
	if input.Name != nil {
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		p.Description = trimOrNil(input.Description)
	}
	if input.Status != nil && strings.TrimSpace(*input.Status) != "" {
		p.Status = domain.ProjectStatus(strings.ToLower(strings.TrimSpace(*input.Status)))
	}
	if input.StartDate != nil {
		p.StartDate, _ = domain.ParseOptionalDate(input.StartDate)
	}
	if input.EndDate != nil {
		p.EndDate, _ = domain.ParseOptionalDate(input.EndDate)
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return p, domain.NewValidationError("end_date", "must not be before start_date")
	}
	return p, nil
}

// Delete removes a project together with its members, modules, sprints and
// tasks. The project's version is not reclaimed.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := s.auth.Authorize(ctx, domain.CapProjectDelete)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, getErr := s.projects.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get project: %w", getErr)
		}
		if err := s.projects.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeProject,
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

	s.log.InfoContext(ctx, "project deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("project_id", id.String()),
	)
	return nil
}

// AttachDocument stores or replaces the project's document.
func (s *Service) AttachDocument(ctx context.Context, id uuid.UUID, doc domain.Document) (*domain.Project, error) {
	actor, err := s.auth.Authorize(ctx, domain.CapProjectUpdate)
	if err != nil {
		return nil, err
	}
	if err := s.checkDocument(&doc); err != nil {
		return nil, err
	}

	var updated *domain.Project
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, getErr := s.projects.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get project: %w", getErr)
		}
		if err := s.projects.SetDocument(txCtx, id, doc); err != nil {
			return fmt.Errorf("set document: %w", err)
		}
		updated, getErr = s.projects.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("reload project: %w", getErr)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeProject,
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

	s.log.InfoContext(ctx, "project document attached",
		slog.String("project_id", id.String()),
		slog.String("document_name", doc.Name),
		slog.Int("bytes", len(doc.Data)),
	)
	return updated, nil
}
