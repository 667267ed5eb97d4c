// Package module orchestrates module mutations within a project.
package module

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
)

type moduleRepo interface {
	Create(ctx context.Context, m domain.Module) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Module, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]domain.Module, error)
	Update(ctx context.Context, m domain.Module) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type serialGenerator interface {
	NextModuleSerial(ctx context.Context, projectID uuid.UUID) (int, error)
}

type changeRecorder interface {
	TryRecord(ctx context.Context, e changelog.Entry) changelog.Outcome
}

type authorizer interface {
	Authorize(ctx context.Context, c domain.Capability) (domain.Actor, error)
	Actor(ctx context.Context) (domain.Actor, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides module operations.
type Service struct {
	modules  moduleRepo
	projects projectReader
	serials  serialGenerator
	changes  changeRecorder
	auth     authorizer
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new module Service.
func NewService(
	log *slog.Logger,
	modules moduleRepo,
	projects projectReader,
	serials serialGenerator,
	changes changeRecorder,
	auth authorizer,
	tx txManager,
) *Service {
	return &Service{
		modules:  modules,
		projects: projects,
		serials:  serials,
		changes:  changes,
		auth:     auth,
		tx:       tx,
		log:      log.With("service", "module"),
	}
}

// CreateModuleInput holds the parameters for creating a module.
type CreateModuleInput struct {
	ProjectID  uuid.UUID `json:"project_id"`
	Name       string    `json:"name"`
	ModuleCode *string   `json:"module_code"`
}

// Validate checks all fields and collects all errors.
func (i CreateModuleInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.ProjectID, validation.By(requiredID)),
		validation.Field(&i.Name, validation.By(notBlank), validation.RuneLength(0, 200)),
		validation.Field(&i.ModuleCode, validation.By(moduleCode)),
	))
}

// UpdateModuleInput is a patch; a present name must not be blank.
type UpdateModuleInput struct {
	Name       *string `json:"name"`
	ModuleCode *string `json:"module_code"`
}

// Validate checks all fields and collects all errors.
func (i UpdateModuleInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.By(notBlank), validation.RuneLength(0, 200)),
		validation.Field(&i.ModuleCode, validation.By(moduleCode)),
	))
}

// Create adds a module to an existing project with the next module serial.
func (s *Service) Create(ctx context.Context, input CreateModuleInput) (*domain.Module, error) {
	actor, err := s.auth.Authorize(ctx, domain.CapModuleCreate)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	code := domain.DefaultModuleCode
	if input.ModuleCode != nil && strings.TrimSpace(*input.ModuleCode) != "" {
		code = strings.ToUpper(strings.TrimSpace(*input.ModuleCode))
	}

	var created *domain.Module
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.projects.GetByID(txCtx, input.ProjectID); err != nil {
			return fmt.Errorf("get project: %w", err)
		}

		serial, err := s.serials.NextModuleSerial(txCtx, input.ProjectID)
		if err != nil {
			return err
		}

		m := domain.Module{
			ID:           uuid.New(),
			ProjectID:    input.ProjectID,
			Name:         strings.TrimSpace(input.Name),
			ModuleCode:   code,
			ModuleSerial: serial,
		}
		if err := s.modules.Create(txCtx, m); err != nil {
			return fmt.Errorf("create module: %w", err)
		}

		created, err = s.modules.GetByID(txCtx, m.ID)
		if err != nil {
			return fmt.Errorf("reload module: %w", err)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeModule,
			EntityID:   m.ID,
			Action:     domain.ChangeActionCreated,
			After:      created,
			Actor:      &actor.UserID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "module created",
		slog.String("project_id", created.ProjectID.String()),
		slog.String("module_id", created.ID.String()),
		slog.Int("serial", created.ModuleSerial),
	)
	return created, nil
}

// Get returns one module with its project name.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Module, error) {
	if _, err := s.auth.Actor(ctx); err != nil {
		return nil, err
	}
	m, err := s.modules.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get module: %w", err)
	}
	return m, nil
}

// List returns modules ordered by serial, optionally for one project.
func (s *Service) List(ctx context.Context, projectID *uuid.UUID) ([]domain.Module, error) {
	if _, err := s.auth.Actor(ctx); err != nil {
		return nil, err
	}
	modules, err := s.modules.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	if modules == nil {
		modules = []domain.Module{}
	}
	return modules, nil
}

// Update renames a module or changes its code. The serial never changes.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateModuleInput) (*domain.Module, error) {
	actor, err := s.auth.Authorize(ctx, domain.CapModuleUpdate)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Module
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.modules.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get module: %w", err)
		}

		next := *before
		if input.Name != nil {
			next.Name = strings.TrimSpace(*input.Name)
		}
		if input.ModuleCode != nil && strings.TrimSpace(*input.ModuleCode) != "" {
			next.ModuleCode = strings.ToUpper(strings.TrimSpace(*input.ModuleCode))
		}
		if err := s.modules.Update(txCtx, next); err != nil {
			return fmt.Errorf("update module: %w", err)
		}

		updated, err = s.modules.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("reload module: %w", err)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeModule,
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

	s.log.InfoContext(ctx, "module updated", slog.String("module_id", id.String()))
	return updated, nil
}

// Delete removes a module. Tasks that referenced it keep existing without a
// module, and its serial is not reused.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := s.auth.Authorize(ctx, domain.CapModuleDelete)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.modules.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get module: %w", err)
		}
		if err := s.modules.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete module: %w", err)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeModule,
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

	s.log.InfoContext(ctx, "module deleted", slog.String("module_id", id.String()))
	return nil
}

func requiredID(v any) error {
	if id, _ := v.(uuid.UUID); id == uuid.Nil {
		return validation.NewError("validation_required", "is required")
	}
	return nil
}

func notBlank(v any) error {
	val, _ := validation.Indirect(v)
	s, ok := val.(string)
	if ok && strings.TrimSpace(s) == "" {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}

func moduleCode(v any) error {
	val, _ := validation.Indirect(v)
	s, _ := val.(string)
	s = strings.TrimSpace(s)
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return validation.NewError("validation_module_code", "must contain letters only")
		}
	}
	if len(s) > 10 {
		return validation.NewError("validation_module_code", "max 10 letters")
	}
	return nil
}
