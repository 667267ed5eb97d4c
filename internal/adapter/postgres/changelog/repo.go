// Package changelog implements the change log repository using PostgreSQL.
// It provides append-only writes and newest-first reads.
package changelog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres"
	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// Repo provides change log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new change log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert appends a row. A zero ID is replaced with a fresh one; changed_at is
// assigned by the database. The returned record carries both.
func (r *Repo) Insert(ctx context.Context, rec domain.ChangeLog) (domain.ChangeLog, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	stmt := postgres.Builder().
		Insert("change_logs").
		Columns("id", "entity_type", "entity_id", "action", "before_data", "after_data", "changed_by").
		Values(rec.ID, string(rec.EntityType), rec.EntityID, string(rec.Action),
			jsonArg(rec.BeforeData), jsonArg(rec.AfterData), rec.ChangedBy).
		Suffix("RETURNING changed_at")

	sql, args, err := stmt.ToSql()
	if err != nil {
		return domain.ChangeLog{}, fmt.Errorf("build change_log insert: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := q.QueryRow(ctx, sql, args...).Scan(&rec.ChangedAt); err != nil {
		return domain.ChangeLog{}, postgres.MapError(err, "change_log", rec.ID)
	}
	return rec, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns rows matching the filter, newest first. A non-positive limit
// returns every match.
func (r *Repo) List(ctx context.Context, f domain.ChangeLogFilter) ([]domain.ChangeLog, error) {
	query := baseSelect()
	if f.EntityType != nil {
		query = query.Where(squirrel.Eq{"c.entity_type": string(*f.EntityType)})
	}
	if f.EntityID != nil {
		query = query.Where(squirrel.Eq{"c.entity_id": *f.EntityID})
	}
	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		query = query.Offset(uint64(f.Offset))
	}

	var rows []domain.ChangeLog
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, fmt.Errorf("list change_logs: %w", err)
	}
	return rows, nil
}

// ProjectActivity returns the newest rows about the project itself and about
// the tasks and modules currently belonging to it.
func (r *Repo) ProjectActivity(ctx context.Context, projectID uuid.UUID, limit int) ([]domain.ChangeLog, error) {
	query := baseSelect().
		Where(squirrel.Or{
			squirrel.Eq{"c.entity_type": string(domain.EntityTypeProject), "c.entity_id": projectID},
			squirrel.Expr("c.entity_type = ? AND c.entity_id IN (SELECT id FROM tasks WHERE project_id = ?)",
				string(domain.EntityTypeTask), projectID),
			squirrel.Expr("c.entity_type = ? AND c.entity_id IN (SELECT id FROM modules WHERE project_id = ?)",
				string(domain.EntityTypeModule), projectID),
		}).
		Limit(uint64(limit))

	var rows []domain.ChangeLog
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, fmt.Errorf("project %s activity: %w", projectID, err)
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func baseSelect() squirrel.SelectBuilder {
	return postgres.Builder().
		Select("c.id", "c.entity_type", "c.entity_id", "c.action", "c.before_data", "c.after_data",
			"c.changed_by", "u.full_name AS changed_by_name", "c.changed_at").
		From("change_logs c").
		LeftJoin("users u ON u.id = c.changed_by").
		OrderBy("c.changed_at DESC", "c.id DESC")
}

// jsonArg maps an empty or literal-null snapshot to SQL NULL.
func jsonArg(raw json.RawMessage) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return string(raw)
}
