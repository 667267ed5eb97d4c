package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/retry"
)

// Create creates a project with its members, modules and optional document
// in one transaction. Blank module names and nil member ids are skipped.
func (s *Service) Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	actor, err := s.auth.Authorize(ctx, domain.CapProjectCreate)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkDocument(input.Document); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	status := domain.ProjectStatusActive
	if input.Status != nil && strings.TrimSpace(*input.Status) != "" {
		status = domain.ProjectStatus(strings.ToLower(strings.TrimSpace(*input.Status)))
	}
	orgCode := s.settings.DefaultOrgCode
	if input.OrgCode != nil && strings.TrimSpace(*input.OrgCode) != "" {
		orgCode = strings.ToUpper(strings.TrimSpace(*input.OrgCode))
	}
	start, _ := domain.ParseOptionalDate(input.StartDate)
	end, _ := domain.ParseOptionalDate(input.EndDate)
	if start != nil && end != nil && end.Before(*start) {
		return nil, domain.NewValidationError("end_date", "must not be before start_date")
	}

	members := compactIDs(input.Members)

	var created *domain.Project
	err = retry.OnConflict(s.settings.SerialRetries, func() error {
		return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			code, version, codeErr := s.codes.NextProjectCode(txCtx, name)
			if codeErr != nil {
				return codeErr
			}

			p := domain.Project{
				ID:          uuid.New(),
				OrgCode:     orgCode,
				ProjectCode: code,
				Version:     version,
				Name:        name,
				Description: trimOrNil(input.Description),
				Status:      status,
				StartDate:   start,
				EndDate:     end,
				CreatedBy:   &actor.UserID,
			}
			if err := s.projects.Create(txCtx, p); err != nil {
				return fmt.Errorf("create project: %w", err)
			}

			if _, err := s.projects.AddMembers(txCtx, p.ID, members); err != nil {
				return fmt.Errorf("add members: %w", err)
			}

			if err := s.appendModules(txCtx, actor, p.ID, input.Modules); err != nil {
				return err
			}

			if input.Document != nil {
				if err := s.projects.SetDocument(txCtx, p.ID, *input.Document); err != nil {
					return fmt.Errorf("set document: %w", err)
				}
			}

			var getErr error
			created, getErr = s.projects.GetByID(txCtx, p.ID)
			if getErr != nil {
				return fmt.Errorf("reload project: %w", getErr)
			}

			s.changes.TryRecord(txCtx, changelog.Entry{
				EntityType: domain.EntityTypeProject,
				EntityID:   created.ID,
				Action:     domain.ChangeActionCreated,
				After:      created,
				Actor:      &actor.UserID,
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("project_id", created.ID.String()),
		slog.String("project_code", created.ProjectCode),
	)

	return created, nil
}

// appendModules creates one module per non-blank name, each with a fresh
// serial and its own change log row.
func (s *Service) appendModules(ctx context.Context, actor domain.Actor, projectID uuid.UUID, names []string) error {
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		serial, err := s.codes.NextModuleSerial(ctx, projectID)
		if err != nil {
			return err
		}

		m := domain.Module{
			ID:           uuid.New(),
			ProjectID:    projectID,
			Name:         name,
			ModuleCode:   domain.DefaultModuleCode,
			ModuleSerial: serial,
		}
		if err := s.modules.Create(ctx, m); err != nil {
			return fmt.Errorf("create module %q: %w", name, err)
		}

		s.changes.TryRecord(ctx, changelog.Entry{
			EntityType: domain.EntityTypeModule,
			EntityID:   m.ID,
			Action:     domain.ChangeActionCreated,
			After:      m,
			Actor:      &actor.UserID,
		})
	}
	return nil
}

func (s *Service) checkDocument(doc *domain.Document) error {
	if doc == nil {
		return nil
	}
	if len(doc.Data) == 0 {
		return domain.NewValidationError("document", "is empty")
	}
	if s.settings.MaxDocumentBytes > 0 && int64(len(doc.Data)) > s.settings.MaxDocumentBytes {
		return domain.NewValidationError("document", fmt.Sprintf("exceeds %d bytes", s.settings.MaxDocumentBytes))
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
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
