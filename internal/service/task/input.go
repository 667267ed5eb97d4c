package task

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// CreateTaskInput holds the parameters for creating a task. Sprint, module
// and assignee are required because the task code is built from them.
type CreateTaskInput struct {
	ProjectID     uuid.UUID   `json:"project_id"`
	SprintID      *uuid.UUID  `json:"sprint_id"`
	ModuleID      *uuid.UUID  `json:"module_id"`
	AssigneeID    *uuid.UUID  `json:"assignee_id"`
	Title         string      `json:"title"`
	Description   *string     `json:"description"`
	Status        *string     `json:"status"`
	StartDatetime *time.Time  `json:"start_datetime"`
	EndDatetime   *time.Time  `json:"end_datetime"`
	EstHours      *float64    `json:"est_hours"`
	ActualHours   *float64    `json:"actual_hours"`
	Collaborators []uuid.UUID `json:"collaborators"`
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.ProjectID, validation.By(requiredID)),
		validation.Field(&i.SprintID, validation.By(requiredID)),
		validation.Field(&i.ModuleID, validation.By(requiredID)),
		validation.Field(&i.AssigneeID, validation.By(requiredID)),
		validation.Field(&i.Title, validation.By(notBlank), validation.RuneLength(0, 300)),
		validation.Field(&i.Status, validation.By(taskStatus)),
		validation.Field(&i.EstHours, validation.By(nonNegative)),
		validation.Field(&i.ActualHours, validation.By(nonNegative)),
	))
}

// UpdateTaskInput is a patch: nil fields keep their value. A non-nil
// Collaborators replaces the whole list.
type UpdateTaskInput struct {
	SprintID      *uuid.UUID   `json:"sprint_id"`
	ModuleID      *uuid.UUID   `json:"module_id"`
	AssigneeID    *uuid.UUID   `json:"assignee_id"`
	Title         *string      `json:"title"`
	Description   *string      `json:"description"`
	Status        *string      `json:"status"`
	StartDatetime *time.Time   `json:"start_datetime"`
	EndDatetime   *time.Time   `json:"end_datetime"`
	EstHours      *float64     `json:"est_hours"`
	ActualHours   *float64     `json:"actual_hours"`
	Collaborators *[]uuid.UUID `json:"collaborators"`
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.By(notBlank), validation.RuneLength(0, 300)),
		validation.Field(&i.Status, validation.By(taskStatus)),
		validation.Field(&i.EstHours, validation.By(nonNegative)),
		validation.Field(&i.ActualHours, validation.By(nonNegative)),
	))
}

// ListInput narrows the role-scoped task list.
type ListInput struct {
	ProjectID *uuid.UUID `json:"project_id"`
}

func requiredID(v any) error {
	var id uuid.UUID
	switch x := v.(type) {
	case uuid.UUID:
		id = x
	case *uuid.UUID:
		if x != nil {
			id = *x
		}
	}
	if id == uuid.Nil {
		return validation.NewError("validation_required", "is required")
	}
	return nil
}

func notBlank(v any) error {
	val, _ := validation.Indirect(v)
	s, ok := val.(string)
	if ok && strings.TrimSpace(s) == "" {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}

func taskStatus(v any) error {
	val, _ := validation.Indirect(v)
	s, _ := val.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := domain.ParseTaskStatus(s); err != nil {
		return validation.NewError("validation_in_invalid", "must be one of todo, in_progress, done")
	}
	return nil
}

func nonNegative(v any) error {
	val, _ := validation.Indirect(v)
	f, ok := val.(float64)
	if ok && f < 0 {
		return validation.NewError("validation_min_greater_equal_than_required", "must not be negative")
	}
	return nil
}

// parseStatus returns the status carried by s, if any. Inputs are validated
// before this is called.
func parseStatus(s *string) (domain.TaskStatus, bool) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "", false
	}
	st, err := domain.ParseTaskStatus(*s)
	return st, err == nil
}
