// Package project orchestrates project mutations: code generation, member
// and module fan-out, the attached document and the change log.
package project

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
)

type projectRepo interface {
	Create(ctx context.Context, p domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, p domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddMembers(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) (int64, error)
	ReplaceMembers(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) error
	SetDocument(ctx context.Context, projectID uuid.UUID, doc domain.Document) error
	Document(ctx context.Context, projectID uuid.UUID) (*domain.Document, error)
}

type moduleRepo interface {
	Create(ctx context.Context, m domain.Module) error
}

type codeGenerator interface {
	NextProjectCode(ctx context.Context, name string) (string, int, error)
	NextModuleSerial(ctx context.Context, projectID uuid.UUID) (int, error)
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

// Settings carries the configurable parts of project creation.
type Settings struct {
	DefaultOrgCode   string
	SerialRetries    int
	MaxDocumentBytes int64
}

// Service provides project operations.
type Service struct {
	projects projectRepo
	modules  moduleRepo
	codes    codeGenerator
	changes  changeRecorder
	auth     authorizer
	tx       txManager
	settings Settings
	log      *slog.Logger
}

// NewService creates a new project Service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	modules moduleRepo,
	codes codeGenerator,
	changes changeRecorder,
	auth authorizer,
	tx txManager,
	settings Settings,
) *Service {
	return &Service{
		projects: projects,
		modules:  modules,
		codes:    codes,
		changes:  changes,
		auth:     auth,
		tx:       tx,
		settings: settings,
		log:      log.With("service", "project"),
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
