// Package codegen draws per-scope serials and assembles the human-readable
// project and task codes.
package codegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

type sequencer interface {
	Next(ctx context.Context, scope domain.SequenceScope, key string) (int64, error)
}

type projectReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type sprintReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error)
}

type moduleReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Module, error)
}

type userReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Generator hands out serials and codes. Serials are drawn with the caller's
// context so they commit or roll back with the caller's transaction.
type Generator struct {
	seq      sequencer
	projects projectReader
	sprints  sprintReader
	modules  moduleReader
	users    userReader
	detach   func(context.Context) context.Context
	log      *slog.Logger
}

// NewGenerator creates a Generator. detach strips the transaction from a
// context so the concurrent lookups in NextTaskCode run on the pool; nil
// keeps the context unchanged.
func NewGenerator(
	log *slog.Logger,
	seq sequencer,
	projects projectReader,
	sprints sprintReader,
	modules moduleReader,
	users userReader,
	detach func(context.Context) context.Context,
) *Generator {
	if detach == nil {
		detach = func(ctx context.Context) context.Context { return ctx }
	}
	return &Generator{
		seq:      seq,
		projects: projects,
		sprints:  sprints,
		modules:  modules,
		users:    users,
		detach:   detach,
		log:      log.With("service", "codegen"),
	}
}

// NextProjectCode derives the code base from name and draws the next version
// for that base: "Phoenix Launch" gives PHOE-1, then PHOE-2. A name without
// letters shares the empty base and yields -1, -2.
func (g *Generator) NextProjectCode(ctx context.Context, name string) (string, int, error) {
	base := domain.ProjectCodeBase(name)
	version, err := g.seq.Next(ctx, domain.ScopeProjectCode, base)
	if err != nil {
		return "", 0, fmt.Errorf("next project version: %w", err)
	}
	return domain.FormatProjectCode(base, int(version)), int(version), nil
}

// NextModuleSerial draws the next module serial of a project.
func (g *Generator) NextModuleSerial(ctx context.Context, projectID uuid.UUID) (int, error) {
	n, err := g.seq.Next(ctx, domain.ScopeModuleSerial, projectID.String())
	if err != nil {
		return 0, fmt.Errorf("next module serial: %w", err)
	}
	return int(n), nil
}

// NextSprintNumber draws the next sprint number of a project.
func (g *Generator) NextSprintNumber(ctx context.Context, projectID uuid.UUID) (int, error) {
	n, err := g.seq.Next(ctx, domain.ScopeSprintNumber, projectID.String())
	if err != nil {
		return 0, fmt.Errorf("next sprint number: %w", err)
	}
	return int(n), nil
}

// TaskCodeRequest names every entity a task code is assembled from.
type TaskCodeRequest struct {
	ProjectID  uuid.UUID
	SprintID   uuid.UUID
	ModuleID   uuid.UUID
	AssigneeID uuid.UUID
}

// NextTaskCode loads the referenced entities concurrently, then draws the
// task serial. A sprint or module of another project counts as missing.
func (g *Generator) NextTaskCode(ctx context.Context, req TaskCodeRequest) (string, int, error) {
	var (
		parts   domain.TaskCodeParts
		project *domain.Project
		sprint  *domain.Sprint
		module  *domain.Module
		user    *domain.User
	)

	eg, egCtx := errgroup.WithContext(g.detach(ctx))
	eg.Go(func() error {
		var err error
		project, err = g.projects.GetByID(egCtx, req.ProjectID)
		return lookupErr(err, "project", "project_id")
	})
	eg.Go(func() error {
		var err error
		sprint, err = g.sprints.GetByID(egCtx, req.SprintID)
		return lookupErr(err, "sprint", "sprint_id")
	})
	eg.Go(func() error {
		var err error
		module, err = g.modules.GetByID(egCtx, req.ModuleID)
		return lookupErr(err, "module", "module_id")
	})
	eg.Go(func() error {
		var err error
		user, err = g.users.GetByID(egCtx, req.AssigneeID)
		return lookupErr(err, "assignee", "assignee_id")
	})
	if err := eg.Wait(); err != nil {
		return "", 0, err
	}

	if sprint.ProjectID != project.ID {
		return "", 0, domain.NewNotFoundError("sprint", "sprint_id")
	}
	if module.ProjectID != project.ID {
		return "", 0, domain.NewNotFoundError("module", "module_id")
	}

	serial, err := g.seq.Next(ctx, domain.ScopeTaskSerial, project.ID.String())
	if err != nil {
		return "", 0, fmt.Errorf("next task serial: %w", err)
	}

	parts = domain.TaskCodeParts{
		OrgCode:        project.OrgCode,
		ProjectCode:    project.ProjectCode,
		ProjectVersion: project.Version,
		ResourceSerial: user.ResourceSerial,
		SprintNumber:   sprint.SprintNumber,
		ModuleCode:     module.ModuleCode,
		ModuleSerial:   module.ModuleSerial,
		TaskSerial:     int(serial),
	}

	g.log.DebugContext(ctx, "task code generated",
		slog.String("project_id", project.ID.String()),
		slog.Int64("serial", serial),
	)

	return domain.FormatTaskCode(parts), int(serial), nil
}

// lookupErr replaces a plain not-found with one naming the request field.
func lookupErr(err error, entity, field string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFoundError(entity, field)
	}
	return fmt.Errorf("load %s: %w", entity, err)
}
