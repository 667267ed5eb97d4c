package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/timesheet"
)

// timesheetService defines the minimal interface needed by TimesheetHandler.
type timesheetService interface {
	Create(ctx context.Context, input timesheet.CreateTimesheetInput) (*domain.Timesheet, error)
	List(ctx context.Context, input timesheet.ListInput) ([]domain.Timesheet, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.Timesheet, error)
	WeeklySummary(ctx context.Context, input timesheet.SummaryInput) ([]domain.TimesheetSummary, error)
}

// TimesheetHandler serves timesheet REST endpoints.
type TimesheetHandler struct {
	svc timesheetService
	log *slog.Logger
}

// NewTimesheetHandler creates a TimesheetHandler.
func NewTimesheetHandler(svc timesheetService, logger *slog.Logger) *TimesheetHandler {
	return &TimesheetHandler{svc: svc, log: logger.With("handler", "timesheet")}
}

// List handles GET /api/timesheets?user_id=&task_id=&from=&to=.
func (h *TimesheetHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUUID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	taskID, err := queryUUID(r, "task_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.List(r.Context(), timesheet.ListInput{
		UserID: userID,
		TaskID: taskID,
		From:   queryString(r, "from"),
		To:     queryString(r, "to"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Create handles POST /api/timesheets.
func (h *TimesheetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input timesheet.CreateTimesheetInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ts, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ts)
}

// Approve handles POST /api/timesheets/{id}/approve.
func (h *TimesheetHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ts, err := h.svc.Approve(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ts)
}

// Summary handles GET /api/timesheets/summary?from=&to=.
func (h *TimesheetHandler) Summary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.WeeklySummary(r.Context(), timesheet.SummaryInput{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
