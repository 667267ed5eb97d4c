package domain

import (
	"fmt"
	"strings"
)

// EntityType identifies which kind of entity a change log row describes.
type EntityType string

const (
	EntityTypeProject   EntityType = "project"
	EntityTypeModule    EntityType = "module"
	EntityTypeSprint    EntityType = "sprint"
	EntityTypeTask      EntityType = "task"
	EntityTypeTimesheet EntityType = "timesheet"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeProject, EntityTypeModule, EntityTypeSprint, EntityTypeTask, EntityTypeTimesheet:
		return true
	}
	return false
}

// ChangeAction is the kind of mutation recorded in a change log row.
type ChangeAction string

const (
	ChangeActionCreated ChangeAction = "created"
	ChangeActionUpdated ChangeAction = "updated"
	ChangeActionDeleted ChangeAction = "deleted"
)

func (a ChangeAction) String() string { return string(a) }

func (a ChangeAction) IsValid() bool {
	switch a {
	case ChangeActionCreated, ChangeActionUpdated, ChangeActionDeleted:
		return true
	}
	return false
}

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// ParseTaskStatus accepts the canonical values plus the display spellings
// clients send ("In Progress", "To Do", "DONE").
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch normalizeEnum(s) {
	case "todo", "to_do":
		return TaskStatusTodo, nil
	case "in_progress", "inprogress":
		return TaskStatusInProgress, nil
	case "done", "completed":
		return TaskStatusDone, nil
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

// SprintStatus is the lifecycle state of a sprint.
type SprintStatus string

const (
	SprintStatusPlanned   SprintStatus = "planned"
	SprintStatusActive    SprintStatus = "active"
	SprintStatusCompleted SprintStatus = "completed"
)

func (s SprintStatus) String() string { return string(s) }

func (s SprintStatus) IsValid() bool {
	switch s {
	case SprintStatusPlanned, SprintStatusActive, SprintStatusCompleted:
		return true
	}
	return false
}

// TimesheetSource tells manual entries apart from cascade-generated ones.
type TimesheetSource string

const (
	TimesheetSourceManual TimesheetSource = "manual"
	TimesheetSourceAuto   TimesheetSource = "auto"
)

func (s TimesheetSource) String() string { return string(s) }

func (s TimesheetSource) IsValid() bool {
	return s == TimesheetSourceManual || s == TimesheetSourceAuto
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleAdmin          UserRole = "admin"
	UserRoleProjectManager UserRole = "project_manager"
	UserRoleDeveloper      UserRole = "developer"
	UserRoleQA             UserRole = "qa"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleProjectManager, UserRoleDeveloper, UserRoleQA:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// ParseUserRole maps every spelling found in stored rows and tokens
// ("Project Manager", "PROJECT_MANAGER", "pm", "ADMIN") onto one role.
func ParseUserRole(s string) (UserRole, error) {
	switch normalizeEnum(s) {
	case "admin", "administrator":
		return UserRoleAdmin, nil
	case "project_manager", "projectmanager", "pm", "manager":
		return UserRoleProjectManager, nil
	case "developer", "dev":
		return UserRoleDeveloper, nil
	case "qa", "tester", "quality_assurance":
		return UserRoleQA, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// normalizeEnum lowercases s and folds spaces and hyphens into underscores.
func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}
