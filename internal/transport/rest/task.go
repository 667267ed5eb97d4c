package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/task"
)

// taskService defines the minimal interface needed by TaskHandler.
type taskService interface {
	Create(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, input task.ListInput) ([]domain.Task, error)
	Update(ctx context.Context, id uuid.UUID, input task.UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskHandler serves task REST endpoints.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

// List handles GET /api/tasks?project_id=. The result is scoped to the
// caller's role.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryUUID(r, "project_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tasks, err := h.svc.List(r.Context(), task.ListInput{ProjectID: projectID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input task.CreateTaskInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Update handles PATCH /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var input task.UpdateTaskInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeMessage(w, "Task deleted")
}
