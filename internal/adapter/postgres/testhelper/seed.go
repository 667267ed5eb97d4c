package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a developer. Returns a filled domain.User including the
// database-assigned resource serial.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleDeveloper)
}

// SeedUserWithRole creates a user with the given role.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		FullName:  "Test User " + suffix,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (id, email, full_name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING resource_serial`,
		user.ID, user.Email, user.FullName, string(user.Role), user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ResourceSerial)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProject creates a project owned by createdBy with a unique code and
// version 1. createdBy may be uuid.Nil for an ownerless project.
func SeedProject(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Project {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Project{
		ID:          uuid.New(),
		OrgCode:     "ORG",
		ProjectCode: "T" + strings.ToUpper(suffix) + "-1",
		Version:     1,
		Name:        "Project " + suffix,
		Status:      domain.ProjectStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if createdBy != uuid.Nil {
		p.CreatedBy = &createdBy
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO projects (id, org_code, project_code, version, name, status, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.OrgCode, p.ProjectCode, p.Version, p.Name, string(p.Status), p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert project: %v", err)
	}

	return p
}

// SeedMember adds userID to the project's member list.
func SeedMember(t *testing.T, pool *pgxpool.Pool, projectID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO project_members (project_id, user_id) VALUES ($1, $2)`,
		projectID, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember insert: %v", err)
	}
}

// SeedModule creates a module with the given serial and the default module code.
func SeedModule(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, serial int) domain.Module {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.Module{
		ID:           uuid.New(),
		ProjectID:    projectID,
		Name:         "Module " + uniqueSuffix(),
		ModuleCode:   domain.DefaultModuleCode,
		ModuleSerial: serial,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO modules (id, project_id, name, module_code, module_serial, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.ProjectID, m.Name, m.ModuleCode, m.ModuleSerial, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedModule insert: %v", err)
	}

	return m
}

// SeedSprint creates a planned two-week sprint with the given number.
func SeedSprint(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, number int) domain.Sprint {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	start := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	s := domain.Sprint{
		ID:           uuid.New(),
		ProjectID:    projectID,
		SprintNumber: number,
		Name:         "Sprint " + uniqueSuffix(),
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 13),
		Status:       domain.SprintStatusPlanned,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO sprints (id, project_id, sprint_number, name, start_date, end_date, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.ProjectID, s.SprintNumber, s.Name, s.StartDate, s.EndDate, string(s.Status), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSprint insert: %v", err)
	}

	return s
}

// SeedTask creates a todo task in the project. assigneeID may be nil.
func SeedTask(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, serial int, assigneeID *uuid.UUID) domain.Task {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	suffix := uniqueSuffix()
	task := domain.Task{
		ID:         uuid.New(),
		ProjectID:  projectID,
		AssigneeID: assigneeID,
		TaskCode:   "ORG/SEED" + suffix,
		TaskSerial: serial,
		Title:      "Task " + suffix,
		Status:     domain.TaskStatusTodo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, project_id, assignee_id, task_code, task_serial, title, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		task.ID, task.ProjectID, task.AssigneeID, task.TaskCode, task.TaskSerial, task.Title, string(task.Status), task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask insert: %v", err)
	}

	return task
}
