package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/sprint"
)

// sprintService defines the minimal interface needed by SprintHandler.
type sprintService interface {
	Create(ctx context.Context, input sprint.CreateSprintInput) (*domain.Sprint, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Sprint, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]domain.Sprint, error)
	Update(ctx context.Context, id uuid.UUID, input sprint.UpdateSprintInput) (*domain.Sprint, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SprintHandler serves sprint REST endpoints.
type SprintHandler struct {
	svc sprintService
	log *slog.Logger
}

// NewSprintHandler creates a SprintHandler.
func NewSprintHandler(svc sprintService, logger *slog.Logger) *SprintHandler {
	return &SprintHandler{svc: svc, log: logger.With("handler", "sprint")}
}

// List handles GET /api/sprints?project_id=.
func (h *SprintHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryUUID(r, "project_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sprints, err := h.svc.List(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sprints)
}

// Create handles POST /api/sprints.
func (h *SprintHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input sprint.CreateSprintInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sp, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sp)
}

// Get handles GET /api/sprints/{id}.
func (h *SprintHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sp, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

// Update handles PATCH /api/sprints/{id}.
func (h *SprintHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var input sprint.UpdateSprintInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sp, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

// Delete handles DELETE /api/sprints/{id}.
func (h *SprintHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeMessage(w, "Sprint deleted")
}
