// Package sprint orchestrates sprint mutations within a project.
package sprint

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
)

type sprintRepo interface {
	Create(ctx context.Context, s domain.Sprint) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]domain.Sprint, error)
	Update(ctx context.Context, s domain.Sprint) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type numberGenerator interface {
	NextSprintNumber(ctx context.Context, projectID uuid.UUID) (int, error)
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

// Service provides sprint operations.
type Service struct {
	sprints  sprintRepo
	projects projectReader
	numbers  numberGenerator
	changes  changeRecorder
	auth     authorizer
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new sprint Service.
func NewService(
	log *slog.Logger,
	sprints sprintRepo,
	projects projectReader,
	numbers numberGenerator,
	changes changeRecorder,
	auth authorizer,
	tx txManager,
) *Service {
	return &Service{
		sprints:  sprints,
		projects: projects,
		numbers:  numbers,
		changes:  changes,
		auth:     auth,
		tx:       tx,
		log:      log.With("service", "sprint"),
	}
}
