// Package sprint implements the Sprint repository using PostgreSQL.
package sprint

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres"
	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// Repo provides sprint persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sprint repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a sprint row.
func (r *Repo) Create(ctx context.Context, s domain.Sprint) error {
	stmt := postgres.Builder().Insert("sprints").
		Columns("id", "project_id", "sprint_number", "name", "start_date", "end_date", "status", "notes").
		Values(s.ID, s.ProjectID, s.SprintNumber, s.Name, s.StartDate, s.EndDate, string(s.Status), s.Notes)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt); err != nil {
		return postgres.MapError(err, "sprint", s.ID)
	}
	return nil
}

// GetByID returns a sprint with its project name.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
	var s domain.Sprint
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, baseSelect().Where(squirrel.Eq{"s.id": id})); err != nil {
		return nil, postgres.MapError(err, "sprint", id)
	}
	return &s, nil
}

// List returns sprints, latest start date first, optionally for one project.
func (r *Repo) List(ctx context.Context, projectID *uuid.UUID) ([]domain.Sprint, error) {
	query := baseSelect()
	if projectID != nil {
		query = query.Where(squirrel.Eq{"s.project_id": *projectID})
	}

	var sprints []domain.Sprint
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &sprints, query); err != nil {
		return nil, fmt.Errorf("list sprints: %w", err)
	}
	return sprints, nil
}

// Update writes the mutable columns of s.
func (r *Repo) Update(ctx context.Context, s domain.Sprint) error {
	stmt := postgres.Builder().Update("sprints").
		Set("name", s.Name).
		Set("start_date", s.StartDate).
		Set("end_date", s.EndDate).
		Set("status", string(s.Status)).
		Set("notes", s.Notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "sprint", s.ID)
	}
	if n == 0 {
		return fmt.Errorf("sprint %s: %w", s.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a sprint; tasks referencing it keep a NULL sprint.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("sprints").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "sprint", id)
	}
	if n == 0 {
		return fmt.Errorf("sprint %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func baseSelect() squirrel.SelectBuilder {
	return postgres.Builder().
		Select("s.id", "s.project_id", "s.sprint_number", "s.name", "s.start_date", "s.end_date",
			"s.status", "s.notes", "p.name AS project_name", "s.created_at", "s.updated_at").
		From("sprints s").
		Join("projects p ON p.id = s.project_id").
		OrderBy("s.start_date DESC", "s.sprint_number DESC")
}
