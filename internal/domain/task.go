package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work inside a project, identified to humans by its
// generated task code.
type Task struct {
	ID            uuid.UUID      `json:"id"                        db:"id"`
	ProjectID     uuid.UUID      `json:"project_id"                db:"project_id"`
	SprintID      *uuid.UUID     `json:"sprint_id"                 db:"sprint_id"`
	ModuleID      *uuid.UUID     `json:"module_id"                 db:"module_id"`
	AssigneeID    *uuid.UUID     `json:"assignee_id"               db:"assignee_id"`
	CreatedBy     *uuid.UUID     `json:"created_by"                db:"created_by"`
	TaskCode      string         `json:"task_code"                 db:"task_code"`
	TaskSerial    int            `json:"task_serial"               db:"task_serial"`
	Title         string         `json:"title"                     db:"title"`
	Description   *string        `json:"description"               db:"description"`
	Status        TaskStatus     `json:"status"                    db:"status"`
	StartDatetime *time.Time     `json:"start_datetime"            db:"start_datetime"`
	EndDatetime   *time.Time     `json:"end_datetime"              db:"end_datetime"`
	EstHours      *float64       `json:"est_hours"                 db:"est_hours"`
	ActualHours   *float64       `json:"actual_hours"              db:"actual_hours"`
	ProjectName   *string        `json:"project_name,omitempty"    db:"project_name"`
	AssigneeName  *string        `json:"assignee_name,omitempty"   db:"assignee_name"`
	CreatedByName *string        `json:"created_by_name,omitempty" db:"created_by_name"`
	Collaborators []Collaborator `json:"collaborators"             db:"collaborators"`
	CreatedAt     time.Time      `json:"created_at"                db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"                db:"updated_at"`
}

// Collaborator is a user linked to a task besides its assignee.
type Collaborator struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Auto-log amounts written when a task update carries these statuses.
const (
	AutoLogStartedMinutes   = 30
	AutoLogCompletedMinutes = 60
	AutoLogStartedNote      = "Auto-log: Task started"
	AutoLogCompletedNote    = "Auto-log: Task completed"
)

// AutoLogFor returns the automatic timesheet entry a status triggers, if any.
func AutoLogFor(status TaskStatus) (minutes int, note string, ok bool) {
	switch status {
	case TaskStatusInProgress:
		return AutoLogStartedMinutes, AutoLogStartedNote, true
	case TaskStatusDone:
		return AutoLogCompletedMinutes, AutoLogCompletedNote, true
	}
	return 0, "", false
}

// TaskFilter narrows task listings. Nil fields do not filter.
type TaskFilter struct {
	ProjectID *uuid.UUID
	// ParticipantID keeps tasks assigned to the user or shared with them.
	ParticipantID *uuid.UUID
	// ManagerID keeps tasks of projects the user created or is a member of.
	ManagerID *uuid.UUID
}
