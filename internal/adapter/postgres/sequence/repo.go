// Package sequence implements per-scope monotonic counters in PostgreSQL.
// Counters are incremented inside the caller's transaction, so a rolled-back
// creation does not consume a value.
package sequence

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres"
	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

const nextSQL = `INSERT INTO sequences (scope, key, value) VALUES ($1, $2, 1)
ON CONFLICT (scope, key) DO UPDATE SET value = sequences.value + 1
RETURNING value`

// Repo hands out sequence values.
type Repo struct {
	db postgres.Querier
}

// New creates a new sequence repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Next returns the next value of (scope, key), starting at 1.
// The row stays locked until the surrounding transaction ends, which
// serializes concurrent creations in the same scope.
func (r *Repo) Next(ctx context.Context, scope domain.SequenceScope, key string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var v int64
	if err := q.QueryRow(ctx, nextSQL, string(scope), key).Scan(&v); err != nil {
		return 0, postgres.MapError(err, "sequence "+string(scope)+"/"+key, uuid.Nil)
	}
	return v, nil
}

// Peek returns the last value handed out for (scope, key), or 0.
func (r *Repo) Peek(ctx context.Context, scope domain.SequenceScope, key string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var v int64
	err := q.QueryRow(ctx,
		`SELECT COALESCE((SELECT value FROM sequences WHERE scope = $1 AND key = $2), 0)`,
		string(scope), key,
	).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("peek sequence %s/%s: %w", scope, key, err)
	}
	return v, nil
}
