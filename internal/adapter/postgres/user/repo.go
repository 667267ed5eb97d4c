// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres"
	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

var userColumns = []string{"id", "email", "full_name", "role", "resource_serial", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().Select(userColumns...).From("users").Where(squirrel.Eq{"id": id})

	var u domain.User
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := postgres.Builder().Select(userColumns...).From("users").
		Where(squirrel.Expr("lower(email) = lower(?)", email))

	var u domain.User
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query); err != nil {
		return nil, postgres.MapError(err, "user "+email, uuid.Nil)
	}
	return &u, nil
}

// List returns every user ordered by full name.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	query := postgres.Builder().Select(userColumns...).From("users").OrderBy("full_name ASC", "id ASC")

	var users []domain.User
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create inserts a user. The resource serial is assigned by the database.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	stmt := postgres.Builder().Insert("users").
		Columns("id", "email", "full_name", "role").
		Values(u.ID, u.Email, u.FullName, string(u.Role)).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))

	var out domain.User
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return &out, nil
}

// SetRole changes a user's role and returns the updated user.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	stmt := postgres.Builder().Update("users").
		Set("role", string(role)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))

	var out domain.User
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &out, nil
}
