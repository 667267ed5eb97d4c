// Package module implements the Module repository using PostgreSQL.
package module

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres"
	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// Repo provides module persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new module repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a module row.
func (r *Repo) Create(ctx context.Context, m domain.Module) error {
	stmt := postgres.Builder().Insert("modules").
		Columns("id", "project_id", "name", "module_code", "module_serial").
		Values(m.ID, m.ProjectID, m.Name, m.ModuleCode, m.ModuleSerial)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt); err != nil {
		return postgres.MapError(err, "module", m.ID)
	}
	return nil
}

// GetByID returns a module with its project name.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Module, error) {
	var m domain.Module
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &m, baseSelect().Where(squirrel.Eq{"m.id": id})); err != nil {
		return nil, postgres.MapError(err, "module", id)
	}
	return &m, nil
}

// List returns modules ordered by serial, optionally limited to one project.
func (r *Repo) List(ctx context.Context, projectID *uuid.UUID) ([]domain.Module, error) {
	query := baseSelect()
	if projectID != nil {
		query = query.Where(squirrel.Eq{"m.project_id": *projectID})
	}

	var modules []domain.Module
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &modules, query); err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	return modules, nil
}

// Update writes the name and module code.
func (r *Repo) Update(ctx context.Context, m domain.Module) error {
	stmt := postgres.Builder().Update("modules").
		Set("name", m.Name).
		Set("module_code", m.ModuleCode).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": m.ID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "module", m.ID)
	}
	if n == 0 {
		return fmt.Errorf("module %s: %w", m.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a module; tasks referencing it keep a NULL module.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("modules").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "module", id)
	}
	if n == 0 {
		return fmt.Errorf("module %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func baseSelect() squirrel.SelectBuilder {
	return postgres.Builder().
		Select("m.id", "m.project_id", "m.name", "m.module_code", "m.module_serial",
			"p.name AS project_name", "m.created_at", "m.updated_at").
		From("modules m").
		Join("projects p ON p.id = m.project_id").
		OrderBy("m.module_serial ASC", "m.project_id ASC")
}
