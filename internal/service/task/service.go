// Package task orchestrates task mutations: code generation, collaborator
// fan-out, the change log and the automatic time log on status updates.
package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/codegen"
)

type taskRepo interface {
	Create(ctx context.Context, t domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, f domain.TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, t domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddCollaborators(ctx context.Context, taskID uuid.UUID, userIDs []uuid.UUID) (int64, error)
	ReplaceCollaborators(ctx context.Context, taskID uuid.UUID, userIDs []uuid.UUID) error
}

type codeGenerator interface {
	NextTaskCode(ctx context.Context, req codegen.TaskCodeRequest) (string, int, error)
}

type autoLogger interface {
	AutoLog(ctx context.Context, taskID, userID uuid.UUID, minutes int, note string) bool
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
}

// Service provides task operations.
type Service struct {
	tasks   taskRepo
	codes   codeGenerator
	timeLog autoLogger
	changes changeRecorder
	auth    authorizer
	tx      txManager
	retries int
	log     *slog.Logger
}

// NewService creates a new task Service. retries bounds how often a create
// is replayed after losing a race on the task serial.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	codes codeGenerator,
	timeLog autoLogger,
	changes changeRecorder,
	auth authorizer,
	tx txManager,
	retries int,
) *Service {
	return &Service{
		tasks:   tasks,
		codes:   codes,
		timeLog: timeLog,
		changes: changes,
		auth:    auth,
		tx:      tx,
		retries: retries,
		log:     log.With("service", "task"),
	}
}

// compactIDs drops nil ids and duplicates, keeping first-seen order.
func compactIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
