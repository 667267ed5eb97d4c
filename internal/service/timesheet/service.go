// Package timesheet records logged time, the automatic entries written by
// task status changes, approvals and the weekly summary.
package timesheet

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
)

type timesheetRepo interface {
	Create(ctx context.Context, ts domain.Timesheet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Timesheet, error)
	List(ctx context.Context, f domain.TimesheetFilter) ([]domain.Timesheet, error)
	Approve(ctx context.Context, id, approver uuid.UUID) (bool, error)
	Summary(ctx context.Context, from, to time.Time) ([]domain.TimesheetSummary, error)
}

type taskReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
}

type changeRecorder interface {
	TryRecord(ctx context.Context, e changelog.Entry) changelog.Outcome
}

type authorizer interface {
	Authorize(ctx context.Context, c domain.Capability) (domain.Actor, error)
	Actor(ctx context.Context) (domain.Actor, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides timesheet operations.
type Service struct {
	timesheets timesheetRepo
	tasks      taskReader
	changes    changeRecorder
	auth       authorizer
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new timesheet Service.
func NewService(
	log *slog.Logger,
	timesheets timesheetRepo,
	tasks taskReader,
	changes changeRecorder,
	auth authorizer,
	tx txManager,
) *Service {
	return &Service{
		timesheets: timesheets,
		tasks:      tasks,
		changes:    changes,
		auth:       auth,
		tx:         tx,
		log:        log.With("service", "timesheet"),
	}
}
