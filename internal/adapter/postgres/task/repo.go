// Package task implements the Task repository using PostgreSQL,
// including the task_collaborators junction.
package task

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres"
	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

const collaboratorsColumn = `COALESCE((
	SELECT json_agg(json_build_object('id', cu.id, 'name', cu.full_name) ORDER BY cu.full_name, cu.id)
	FROM task_collaborators tc JOIN users cu ON cu.id = tc.user_id
	WHERE tc.task_id = t.id), '[]'::json) AS collaborators`

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

// Create inserts a task row. Collaborators are written separately.
func (r *Repo) Create(ctx context.Context, t domain.Task) error {
	stmt := postgres.Builder().Insert("tasks").
		Columns("id", "project_id", "sprint_id", "module_id", "assignee_id", "created_by",
			"task_code", "task_serial", "title", "description", "status",
			"start_datetime", "end_datetime", "est_hours", "actual_hours").
		Values(t.ID, t.ProjectID, t.SprintID, t.ModuleID, t.AssigneeID, t.CreatedBy,
			t.TaskCode, t.TaskSerial, t.Title, t.Description, string(t.Status),
			t.StartDatetime, t.EndDatetime, t.EstHours, t.ActualHours)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt); err != nil {
		return postgres.MapError(err, "task", t.ID)
	}
	return nil
}

// GetByID returns a task with display names and collaborators.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var t domain.Task
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, baseSelect().Where(squirrel.Eq{"t.id": id})); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return &t, nil
}

// List returns tasks matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.TaskFilter) ([]domain.Task, error) {
	query := baseSelect()
	if f.ProjectID != nil {
		query = query.Where(squirrel.Eq{"t.project_id": *f.ProjectID})
	}
	if f.ParticipantID != nil {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"t.assignee_id": *f.ParticipantID},
			squirrel.Expr("EXISTS (SELECT 1 FROM task_collaborators tc WHERE tc.task_id = t.id AND tc.user_id = ?)", *f.ParticipantID),
		})
	}
	if f.ManagerID != nil {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"p.created_by": *f.ManagerID},
			squirrel.Expr("EXISTS (SELECT 1 FROM project_members pm WHERE pm.project_id = t.project_id AND pm.user_id = ?)", *f.ManagerID),
		})
	}

	var tasks []domain.Task
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &tasks, query); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update writes the mutable columns of t. Project, code and serial never change.
func (r *Repo) Update(ctx context.Context, t domain.Task) error {
	stmt := postgres.Builder().Update("tasks").
		Set("sprint_id", t.SprintID).
		Set("module_id", t.ModuleID).
		Set("assignee_id", t.AssigneeID).
		Set("title", t.Title).
		Set("description", t.Description).
		Set("status", string(t.Status)).
		Set("start_datetime", t.StartDatetime).
		Set("end_datetime", t.EndDatetime).
		Set("est_hours", t.EstHours).
		Set("actual_hours", t.ActualHours).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "task", t.ID)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", t.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a task; collaborators and timesheet entries cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("tasks").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Collaborators
// ---------------------------------------------------------------------------

const addCollaboratorsSQL = `INSERT INTO task_collaborators (task_id, user_id)
SELECT $1, u.id FROM users u WHERE u.id = ANY($2)
ON CONFLICT (task_id, user_id) DO NOTHING`

// AddCollaborators links users to the task, skipping unknown ids and
// existing links.
func (r *Repo) AddCollaborators(ctx context.Context, taskID uuid.UUID, userIDs []uuid.UUID) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, addCollaboratorsSQL, taskID, userIDs)
	if err != nil {
		return 0, postgres.MapError(err, "task_collaborators", taskID)
	}
	return tag.RowsAffected(), nil
}

// ReplaceCollaborators sets the collaborator list to exactly userIDs.
func (r *Repo) ReplaceCollaborators(ctx context.Context, taskID uuid.UUID, userIDs []uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM task_collaborators WHERE task_id = $1`, taskID); err != nil {
		return postgres.MapError(err, "task_collaborators", taskID)
	}
	_, err := r.AddCollaborators(ctx, taskID, userIDs)
	return err
}

func baseSelect() squirrel.SelectBuilder {
	return postgres.Builder().
		Select("t.id", "t.project_id", "t.sprint_id", "t.module_id", "t.assignee_id", "t.created_by",
			"t.task_code", "t.task_serial", "t.title", "t.description", "t.status",
			"t.start_datetime", "t.end_datetime", "t.est_hours", "t.actual_hours",
			"p.name AS project_name", "a.full_name AS assignee_name", "c.full_name AS created_by_name",
			collaboratorsColumn, "t.created_at", "t.updated_at").
		From("tasks t").
		Join("projects p ON p.id = t.project_id").
		LeftJoin("users a ON a.id = t.assignee_id").
		LeftJoin("users c ON c.id = t.created_by").
		OrderBy("t.created_at DESC", "t.id DESC")
}
