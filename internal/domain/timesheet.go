package domain

import (
	"time"

	"github.com/google/uuid"
)

// Timesheet is one block of logged time. Approval is one-way.
type Timesheet struct {
	ID            uuid.UUID       `json:"id"                     db:"id"`
	UserID        uuid.UUID       `json:"user_id"                db:"user_id"`
	TaskID        *uuid.UUID      `json:"task_id"                db:"task_id"`
	LogDate       time.Time       `json:"log_date"               db:"log_date"`
	MinutesLogged int             `json:"minutes_logged"         db:"minutes_logged"`
	Source        TimesheetSource `json:"source"                 db:"source"`
	Notes         *string         `json:"notes"                  db:"notes"`
	ApprovedBy    *uuid.UUID      `json:"approved_by"            db:"approved_by"`
	ApprovedAt    *time.Time      `json:"approved_at"            db:"approved_at"`
	UserName      *string         `json:"user_name,omitempty"    db:"user_name"`
	TaskTitle     *string         `json:"task_title,omitempty"   db:"task_title"`
	ProjectName   *string         `json:"project_name,omitempty" db:"project_name"`
	CreatedAt     time.Time       `json:"created_at"             db:"created_at"`
}

// IsApproved reports whether the entry has been approved.
func (t *Timesheet) IsApproved() bool {
	return t.ApprovedBy != nil
}

// TimesheetSummary aggregates one user's logged time over a date range.
type TimesheetSummary struct {
	UserID       uuid.UUID `json:"user_id"       db:"user_id"`
	FullName     string    `json:"full_name"     db:"full_name"`
	TotalMinutes int64     `json:"total_minutes" db:"total_minutes"`
	TasksWorked  int64     `json:"tasks_worked"  db:"tasks_worked"`
}

// TimesheetFilter narrows timesheet listings. Bounds are inclusive dates.
type TimesheetFilter struct {
	UserID *uuid.UUID
	TaskID *uuid.UUID
	From   *time.Time
	To     *time.Time
}
