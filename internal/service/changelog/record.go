package changelog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// Entry describes one mutation. Before and After are marshalled to JSON;
// nil (or a nil pointer) means "no snapshot".
type Entry struct {
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Action     domain.ChangeAction
	Before     any
	After      any
	Actor      *uuid.UUID
}

// Outcome reports what TryRecord did. Orchestrators discard it; tests
// inspect it.
type Outcome struct {
	Recorded bool
	ID       uuid.UUID
	Err      error
}

// TryRecord appends a change log row inside a savepoint. It never returns an
// error: failures are logged at error level and reported in the Outcome.
func (w *Writer) TryRecord(ctx context.Context, e Entry) Outcome {
	rec, err := e.record()
	if err == nil {
		err = rec.Validate()
	}
	if err == nil {
		err = w.tx.RunInSavepoint(ctx, func(spCtx context.Context) error {
			saved, insErr := w.repo.Insert(spCtx, rec)
			if insErr != nil {
				return insErr
			}
			rec = saved
			return nil
		})
	}

	if err != nil {
		w.log.ErrorContext(ctx, "change log write failed",
			slog.String("entity_type", e.EntityType.String()),
			slog.String("entity_id", e.EntityID.String()),
			slog.String("action", e.Action.String()),
			slog.String("error", err.Error()),
		)
		return Outcome{Err: err}
	}

	return Outcome{Recorded: true, ID: rec.ID}
}

func (e Entry) record() (domain.ChangeLog, error) {
	before, err := snapshot(e.Before)
	if err != nil {
		return domain.ChangeLog{}, fmt.Errorf("marshal before: %w", err)
	}
	after, err := snapshot(e.After)
	if err != nil {
		return domain.ChangeLog{}, fmt.Errorf("marshal after: %w", err)
	}

	return domain.ChangeLog{
		ID:         uuid.New(),
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Action:     e.Action,
		BeforeData: before,
		AfterData:  after,
		ChangedBy:  e.Actor,
	}, nil
}

func snapshot(v any) (json.RawMessage, error) {
	switch s := v.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return s, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return nil, nil
	}
	return b, nil
}
