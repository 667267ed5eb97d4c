package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/module"
)

// moduleService defines the minimal interface needed by ModuleHandler.
type moduleService interface {
	Create(ctx context.Context, input module.CreateModuleInput) (*domain.Module, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Module, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]domain.Module, error)
	Update(ctx context.Context, id uuid.UUID, input module.UpdateModuleInput) (*domain.Module, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ModuleHandler serves module REST endpoints.
type ModuleHandler struct {
	svc moduleService
	log *slog.Logger
}

// NewModuleHandler creates a ModuleHandler.
func NewModuleHandler(svc moduleService, logger *slog.Logger) *ModuleHandler {
	return &ModuleHandler{svc: svc, log: logger.With("handler", "module")}
}

// List handles GET /api/modules?project_id=.
func (h *ModuleHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryUUID(r, "project_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	modules, err := h.svc.List(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, modules)
}

// Create handles POST /api/modules.
func (h *ModuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input module.CreateModuleInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// Get handles GET /api/modules/{id}.
func (h *ModuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Update handles PATCH /api/modules/{id}.
func (h *ModuleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var input module.UpdateModuleInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Delete handles DELETE /api/modules/{id}.
func (h *ModuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeMessage(w, "Module deleted")
}
