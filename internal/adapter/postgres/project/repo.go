// Package project implements the Project repository using PostgreSQL,
// including project membership and the attached document blob.
package project

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres"
	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

// Create inserts a project row. Members and document are written separately.
func (r *Repo) Create(ctx context.Context, p domain.Project) error {
	stmt := postgres.Builder().Insert("projects").
		Columns("id", "org_code", "project_code", "version", "name", "description",
			"status", "start_date", "end_date", "created_by").
		Values(p.ID, p.OrgCode, p.ProjectCode, p.Version, p.Name, p.Description,
			string(p.Status), p.StartDate, p.EndDate, p.CreatedBy)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt); err != nil {
		return postgres.MapError(err, "project", p.ID)
	}
	return nil
}

// GetByID returns a project with its creator name and member ids.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var p domain.Project
	if err := postgres.Get(ctx, q, &p, baseSelect().Where(squirrel.Eq{"p.id": id})); err != nil {
		return nil, postgres.MapError(err, "project", id)
	}

	members, err := r.Members(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Members = members
	return &p, nil
}

// List returns all projects, newest first. Members are not loaded.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &projects, baseSelect()); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Update writes the mutable columns of p.
func (r *Repo) Update(ctx context.Context, p domain.Project) error {
	stmt := postgres.Builder().Update("projects").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("status", string(p.Status)).
		Set("start_date", p.StartDate).
		Set("end_date", p.EndDate).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "project", p.ID)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a project; members, modules, sprints and tasks cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	stmt := postgres.Builder().Delete("projects").Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Members
// ---------------------------------------------------------------------------

const addMembersSQL = `INSERT INTO project_members (project_id, user_id)
SELECT $1, u.id FROM users u WHERE u.id = ANY($2)
ON CONFLICT (project_id, user_id) DO NOTHING`

// AddMembers links the given users to the project. Unknown user ids and
// existing memberships are skipped. Returns the number of rows added.
func (r *Repo) AddMembers(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, addMembersSQL, projectID, userIDs)
	if err != nil {
		return 0, postgres.MapError(err, "project_members", projectID)
	}
	return tag.RowsAffected(), nil
}

// ReplaceMembers sets the member list to exactly userIDs (minus unknown ids).
func (r *Repo) ReplaceMembers(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, `DELETE FROM project_members WHERE project_id = $1`, projectID); err != nil {
		return postgres.MapError(err, "project_members", projectID)
	}
	_, err := r.AddMembers(ctx, projectID, userIDs)
	return err
}

// Members returns the member user ids of a project in insertion order.
func (r *Repo) Members(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	query := postgres.Builder().Select("user_id").From("project_members").
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("created_at ASC", "user_id ASC")

	ids := []uuid.UUID{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query); err != nil {
		return nil, fmt.Errorf("project %s members: %w", projectID, err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Document
// ---------------------------------------------------------------------------

// SetDocument stores (or replaces) the project's document.
func (r *Repo) SetDocument(ctx context.Context, projectID uuid.UUID, doc domain.Document) error {
	stmt := postgres.Builder().Update("projects").
		Set("document", doc.Data).
		Set("document_name", doc.Name).
		Set("document_type", doc.ContentType).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": projectID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "project", projectID)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	return nil
}

// Document returns the stored document. A project without one yields a
// NotFoundError for "document".
func (r *Repo) Document(ctx context.Context, projectID uuid.UUID) (*domain.Document, error) {
	var (
		data        []byte
		name, ctype *string
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT document, document_name, document_type FROM projects WHERE id = $1`, projectID,
	).Scan(&data, &name, &ctype)
	if err != nil {
		return nil, postgres.MapError(err, "project", projectID)
	}
	if data == nil {
		return nil, domain.NewNotFoundError("document", "")
	}

	doc := &domain.Document{Data: data, ContentType: "application/octet-stream", Name: "document"}
	if name != nil {
		doc.Name = *name
	}
	if ctype != nil && *ctype != "" {
		doc.ContentType = *ctype
	}
	return doc, nil
}

func baseSelect() squirrel.SelectBuilder {
	return postgres.Builder().
		Select("p.id", "p.org_code", "p.project_code", "p.version", "p.name", "p.description",
			"p.status", "p.start_date", "p.end_date", "p.created_by", "u.full_name AS created_by_name",
			"p.document_name", "p.document_type", "(p.document IS NOT NULL) AS has_document",
			"p.created_at", "p.updated_at").
		From("projects p").
		LeftJoin("users u ON u.id = p.created_by").
		OrderBy("p.created_at DESC", "p.id DESC")
}
