package timesheet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
)

// Create logs manual time for the caller. The log date defaults to today.
func (s *Service) Create(ctx context.Context, input CreateTimesheetInput) (*domain.Timesheet, error) {
	actor, err := s.auth.Actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Timesheet
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.TaskID != nil {
			if _, err := s.tasks.GetByID(txCtx, *input.TaskID); err != nil {
				return fmt.Errorf("get task: %w", err)
			}
		}

		ts := domain.Timesheet{
			ID:            uuid.New(),
			UserID:        actor.UserID,
			TaskID:        input.TaskID,
			MinutesLogged: input.MinutesLogged,
			Source:        domain.TimesheetSourceManual,
			Notes:         trimOrNil(input.Notes),
		}
		if d, _ := domain.ParseOptionalDate(input.LogDate); d != nil {
			ts.LogDate = *d
		}
		if err := s.timesheets.Create(txCtx, ts); err != nil {
			return fmt.Errorf("create timesheet: %w", err)
		}

		var err error
		created, err = s.timesheets.GetByID(txCtx, ts.ID)
		if err != nil {
			return fmt.Errorf("reload timesheet: %w", err)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeTimesheet,
			EntityID:   ts.ID,
			Action:     domain.ChangeActionCreated,
			After:      created,
			Actor:      &actor.UserID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "time logged",
		slog.String("user_id", actor.UserID.String()),
		slog.String("timesheet_id", created.ID.String()),
		slog.Int("minutes", created.MinutesLogged),
	)
	return created, nil
}

// AutoLog writes an automatic entry for userID on taskID inside a savepoint
// of the caller's transaction. It never fails the caller and writes no
// change log row; it reports whether the entry was stored.
func (s *Service) AutoLog(ctx context.Context, taskID, userID uuid.UUID, minutes int, note string) bool {
	err := s.tx.RunInSavepoint(ctx, func(spCtx context.Context) error {
		return s.timesheets.Create(spCtx, domain.Timesheet{
			ID:            uuid.New(),
			UserID:        userID,
			TaskID:        &taskID,
			MinutesLogged: minutes,
			Source:        domain.TimesheetSourceAuto,
			Notes:         &note,
		})
	})
	if err != nil {
		s.log.ErrorContext(ctx, "auto time log failed",
			slog.String("task_id", taskID.String()),
			slog.String("user_id", userID.String()),
			slog.Int("minutes", minutes),
			slog.String("error", err.Error()),
		)
		return false
	}

	s.log.DebugContext(ctx, "auto time logged",
		slog.String("task_id", taskID.String()),
		slog.Int("minutes", minutes),
	)
	return true
}

// List returns entries latest log date first. Callers who cannot approve
// timesheets only see their own entries.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Timesheet, error) {
	actor, err := s.auth.Actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.TimesheetFilter{UserID: input.UserID, TaskID: input.TaskID}
	f.From, _ = domain.ParseOptionalDate(input.From)
	f.To, _ = domain.ParseOptionalDate(input.To)
	if _, err := s.auth.Authorize(ctx, domain.CapTimesheetApprove); err != nil {
		f.UserID = &actor.UserID
	}

	entries, err := s.timesheets.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list timesheets: %w", err)
	}
	if entries == nil {
		entries = []domain.Timesheet{}
	}
	return entries, nil
}

// Approve marks an entry approved by the caller. Approval is one-way:
// approving an approved entry is a conflict.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.Timesheet, error) {
	actor, err := s.auth.Authorize(ctx, domain.CapTimesheetApprove)
	if err != nil {
		return nil, err
	}

	var approved *domain.Timesheet
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.timesheets.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get timesheet: %w", err)
		}
		if before.IsApproved() {
			return fmt.Errorf("%w: timesheet already approved", domain.ErrConflict)
		}

		ok, err := s.timesheets.Approve(txCtx, id, actor.UserID)
		if err != nil {
			return fmt.Errorf("approve timesheet: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: timesheet already approved", domain.ErrConflict)
		}

		approved, err = s.timesheets.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("reload timesheet: %w", err)
		}

		s.changes.TryRecord(txCtx, changelog.Entry{
			EntityType: domain.EntityTypeTimesheet,
			EntityID:   id,
			Action:     domain.ChangeActionUpdated,
			Before:     before,
			After:      approved,
			Actor:      &actor.UserID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "timesheet approved",
		slog.String("timesheet_id", id.String()),
		slog.String("approved_by", actor.UserID.String()),
	)
	return approved, nil
}

// WeeklySummary totals minutes and distinct tasks per user between two
// inclusive dates.
func (s *Service) WeeklySummary(ctx context.Context, input SummaryInput) ([]domain.TimesheetSummary, error) {
	if _, err := s.auth.Actor(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	from, _ := domain.ParseDate(input.From)
	to, _ := domain.ParseDate(input.To)
	if to.Before(from) {
		return nil, domain.NewValidationError("to", "must not be before from")
	}

	rows, err := s.timesheets.Summary(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("timesheet summary: %w", err)
	}
	if rows == nil {
		rows = []domain.TimesheetSummary{}
	}
	return rows, nil
}

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
