package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/codegen"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/retry"
)

// Create creates a task with its generated code and collaborators in one
// transaction.
func (s *Service) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	actor, err := s.auth.Authorize(ctx, domain.CapTaskCreate)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.TaskStatusTodo
	if st, ok := parseStatus(input.Status); ok {
		status = st
	}
	collaborators := compactIDs(input.Collaborators)
	req := codegen.TaskCodeRequest{
		ProjectID:  input.ProjectID,
		SprintID:   *input.SprintID,
		ModuleID:   *input.ModuleID,
		AssigneeID: *input.AssigneeID,
	}

	var created *domain.Task
	err = retry.OnConflict(s.retries, func() error {
		return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			code, serial, codeErr := s.codes.NextTaskCode(txCtx, req)
			if codeErr != nil {
				return codeErr
			}

			t := domain.Task{
				ID:            uuid.New(),
				ProjectID:     input.ProjectID,
				SprintID:      input.SprintID,
				ModuleID:      input.ModuleID,
				AssigneeID:    input.AssigneeID,
				CreatedBy:     &actor.UserID,
				TaskCode:      code,
				TaskSerial:    serial,
				Title:         strings.TrimSpace(input.Title),
				Description:   trimOrNil(input.Description),
				Status:        status,
				StartDatetime: input.StartDatetime,
				EndDatetime:   input.EndDatetime,
				EstHours:      input.EstHours,
				ActualHours:   input.ActualHours,
			}
			if err := s.tasks.Create(txCtx, t); err != nil {
				return fmt.Errorf("create task: %w", err)
			}
			if _, err := s.tasks.AddCollaborators(txCtx, t.ID, collaborators); err != nil {
				return fmt.Errorf("add collaborators: %w", err)
			}

			var getErr error
			created, getErr = s.tasks.GetByID(txCtx, t.ID)
			if getErr != nil {
				return fmt.Errorf("reload task: %w", getErr)
			}

			s.changes.TryRecord(txCtx, changelog.Entry{
				EntityType: domain.EntityTypeTask,
				EntityID:   t.ID,
				Action:     domain.ChangeActionCreated,
				After:      created,
				Actor:      &actor.UserID,
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("task_id", created.ID.String()),
		slog.String("task_code", created.TaskCode),
	)
	return created, nil
}

// Update applies a patch to a task. Developers may only update tasks
// assigned to them. Every update carrying in_progress or done writes an
// automatic time entry for the caller, whether or not the status changed.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*domain.Task, error) {
	actor, err := s.auth.Authorize(ctx, domain.CapTaskUpdate)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Task
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.tasks.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if actor.Role == domain.UserRoleDeveloper && !assignedTo(before, actor.UserID) {
			return fmt.Errorf("%w: task is not assigned to you", domain.ErrForbidden)
		}

		next := applyPatch(*before, input)
		if err := s.tasks.Update(txCtx, next); err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		if input.Collaborators != nil {
			if err := s.tasks.ReplaceCollaborators(txCtx, id, compactIDs(*input.Collaborators)); err != nil {
				return fmt.Errorf("replace collaborators: %w", err)
			}
		}

		updated, err = s.tasks.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("reload task: %w", err)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeTask,
			EntityID:   id,
			Action:     domain.ChangeActionUpdated,
			Before:     before,
			After:      updated,
			Actor:      &actor.UserID,
		})

		if st, ok := parseStatus(input.Status); ok {
			if minutes, note, auto := domain.AutoLogFor(st); auto {
				s.timeLog.AutoLog(txCtx, id, actor.UserID, minutes, note)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "task updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("task_id", id.String()),
		slog.String("status", updated.Status.String()),
	)
	return updated, nil
}

// Delete removes a task. Its collaborators and time entries go with it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := s.auth.Authorize(ctx, domain.CapTaskDelete)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.tasks.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if err := s.tasks.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeTask,
			EntityID:   id,
			Action:     domain.ChangeActionDeleted,
			Before:     before,
			Actor:      &actor.UserID,
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("task_id", id.String()),
	)
	return nil
}

// Get returns a task with project, assignee, creator and collaborator names.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if _, err := s.auth.Actor(ctx); err != nil {
		return nil, err
	}

	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// List returns the tasks visible to the caller, newest first. Developers see
// tasks assigned to or shared with them; project managers see tasks of the
// projects they created or belong to; admins and QA see everything.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Task, error) {
	actor, err := s.auth.Actor(ctx)
	if err != nil {
		return nil, err
	}

	f := domain.TaskFilter{ProjectID: input.ProjectID}
	switch actor.Role {
	case domain.UserRoleDeveloper:
		f.ParticipantID = &actor.UserID
	case domain.UserRoleProjectManager:
		f.ManagerID = &actor.UserID
	}

	tasks, err := s.tasks.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func assignedTo(t *domain.Task, userID uuid.UUID) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// applyPatch copies the non-nil fields of input onto t. A blank description
// clears it. Code and serial never change.
func applyPatch(t domain.Task, input UpdateTaskInput) domain.Task {
	if input.SprintID != nil {
		t.SprintID = input.SprintID
	}
	if input.ModuleID != nil {
		t.ModuleID = input.ModuleID
	}
	if input.AssigneeID != nil {
		t.AssigneeID = input.AssigneeID
	}
	if input.Title != nil {
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		t.Description = trimOrNil(input.Description)
	}
	if st, ok := parseStatus(input.Status); ok {
		t.Status = st
	}
	if input.StartDatetime != nil {
		t.StartDatetime = input.StartDatetime
	}
	if input.EndDatetime != nil {
		t.EndDatetime = input.EndDatetime
	}
	if input.EstHours != nil {
		t.EstHours = input.EstHours
	}
	if input.ActualHours != nil {
		t.ActualHours = input.ActualHours
	}
	return t
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
