package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
)

type changeLogLister interface {
	List(ctx context.Context, in changelog.ListInput) ([]domain.ChangeLog, error)
}

// ChangeLogHandler serves the audit trail.
type ChangeLogHandler struct {
	reader changeLogLister
	log    *slog.Logger
}

// NewChangeLogHandler creates a ChangeLogHandler.
func NewChangeLogHandler(reader changeLogLister, logger *slog.Logger) *ChangeLogHandler {
	return &ChangeLogHandler{reader: reader, log: logger.With("handler", "changelog")}
}

// List handles GET /api/change-logs?entity_type=&entity_id=&limit=&offset=.
func (h *ChangeLogHandler) List(w http.ResponseWriter, r *http.Request) {
	entityID, err := queryUUID(r, "entity_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rows, err := h.reader.List(r.Context(), changelog.ListInput{
		EntityType: r.URL.Query().Get("entity_type"),
		EntityID:   entityID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
