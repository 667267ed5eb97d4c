// Package timesheet implements the Timesheet repository using PostgreSQL.
package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres"
	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// Repo provides timesheet persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new timesheet repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an entry. A zero log date lets the database use today.
func (r *Repo) Create(ctx context.Context, ts domain.Timesheet) error {
	cols := []string{"id", "user_id", "task_id", "minutes_logged", "source", "notes"}
	vals := []any{ts.ID, ts.UserID, ts.TaskID, ts.MinutesLogged, string(ts.Source), ts.Notes}
	if !ts.LogDate.IsZero() {
		cols = append(cols, "log_date")
		vals = append(vals, ts.LogDate)
	}

	stmt := postgres.Builder().Insert("timesheets").Columns(cols...).Values(vals...)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt); err != nil {
		return postgres.MapError(err, "timesheet", ts.ID)
	}
	return nil
}

// GetByID returns an entry with user, task and project names.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Timesheet, error) {
	var ts domain.Timesheet
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &ts, baseSelect().Where(squirrel.Eq{"ts.id": id})); err != nil {
		return nil, postgres.MapError(err, "timesheet", id)
	}
	return &ts, nil
}

// List returns entries matching the filter, latest log date first.
func (r *Repo) List(ctx context.Context, f domain.TimesheetFilter) ([]domain.Timesheet, error) {
	query := baseSelect()
	if f.UserID != nil {
		query = query.Where(squirrel.Eq{"ts.user_id": *f.UserID})
	}
	if f.TaskID != nil {
		query = query.Where(squirrel.Eq{"ts.task_id": *f.TaskID})
	}
	if f.From != nil {
		query = query.Where(squirrel.GtOrEq{"ts.log_date": *f.From})
	}
	if f.To != nil {
		query = query.Where(squirrel.LtOrEq{"ts.log_date": *f.To})
	}

	var entries []domain.Timesheet
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &entries, query); err != nil {
		return nil, fmt.Errorf("list timesheets: %w", err)
	}
	return entries, nil
}

// Approve marks a pending entry approved. It reports false when the entry
// does not exist or is already approved.
func (r *Repo) Approve(ctx context.Context, id, approver uuid.UUID) (bool, error) {
	stmt := postgres.Builder().Update("timesheets").
		Set("approved_by", approver).
		Set("approved_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "approved_by": nil})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return false, postgres.MapError(err, "timesheet", id)
	}
	return n == 1, nil
}

// Summary aggregates minutes and distinct tasks per user between from and to
// (inclusive), largest total first.
func (r *Repo) Summary(ctx context.Context, from, to time.Time) ([]domain.TimesheetSummary, error) {
	query := postgres.Builder().
		Select("u.id AS user_id", "u.full_name",
			"SUM(ts.minutes_logged) AS total_minutes",
			"COUNT(DISTINCT ts.task_id) AS tasks_worked").
		From("timesheets ts").
		Join("users u ON u.id = ts.user_id").
		Where(squirrel.GtOrEq{"ts.log_date": from}).
		Where(squirrel.LtOrEq{"ts.log_date": to}).
		GroupBy("u.id", "u.full_name").
		OrderBy("total_minutes DESC", "u.full_name ASC")

	summary := []domain.TimesheetSummary{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &summary, query); err != nil {
		return nil, fmt.Errorf("timesheet summary: %w", err)
	}
	return summary, nil
}

func baseSelect() squirrel.SelectBuilder {
	return postgres.Builder().
		Select("ts.id", "ts.user_id", "ts.task_id", "ts.log_date", "ts.minutes_logged", "ts.source",
			"ts.notes", "ts.approved_by", "ts.approved_at", "u.full_name AS user_name",
			"t.title AS task_title", "p.name AS project_name", "ts.created_at").
		From("timesheets ts").
		Join("users u ON u.id = ts.user_id").
		LeftJoin("tasks t ON t.id = ts.task_id").
		LeftJoin("projects p ON p.id = t.project_id").
		OrderBy("ts.log_date DESC", "ts.created_at DESC", "ts.id DESC")
}
