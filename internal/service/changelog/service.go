// Package changelog records entity mutations and serves them back.
//
// Writer.TryRecord never fails the caller: a change log row that cannot be
// written is reported to the log and dropped, and the write runs in a
// savepoint so it cannot abort the surrounding transaction.
package changelog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

type inserter interface {
	Insert(ctx context.Context, rec domain.ChangeLog) (domain.ChangeLog, error)
}

type savepointRunner interface {
	RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error
}

type lister interface {
	List(ctx context.Context, f domain.ChangeLogFilter) ([]domain.ChangeLog, error)
	ProjectActivity(ctx context.Context, projectID uuid.UUID, limit int) ([]domain.ChangeLog, error)
}

// Writer appends change log rows.
type Writer struct {
	repo inserter
	tx   savepointRunner
	log  *slog.Logger
}

// NewWriter creates a new change log Writer.
func NewWriter(log *slog.Logger, repo inserter, tx savepointRunner) *Writer {
	return &Writer{
		repo: repo,
		tx:   tx,
		log:  log.With("service", "changelog"),
	}
}

// Reader lists change log rows.
type Reader struct {
	repo     lister
	pageSize int
	log      *slog.Logger
}

// NewReader creates a new change log Reader. pageSize caps the project
// activity feed and never exceeds domain.ActivityPageSize.
func NewReader(log *slog.Logger, repo lister, pageSize int) *Reader {
	if pageSize <= 0 || pageSize > domain.ActivityPageSize {
		pageSize = domain.ActivityPageSize
	}
	return &Reader{
		repo:     repo,
		pageSize: pageSize,
		log:      log.With("service", "changelog"),
	}
}
