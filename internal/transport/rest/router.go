package rest

import "net/http"

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Projects   *ProjectHandler
	Modules    *ModuleHandler
	Sprints    *SprintHandler
	Tasks      *TaskHandler
	Timesheets *TimesheetHandler
	ChangeLogs *ChangeLogHandler
	Users      *UserHandler
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/projects", h.Projects.List)
	mux.HandleFunc("POST /api/projects", h.Projects.Create)
	mux.HandleFunc("GET /api/projects/{id}", h.Projects.Get)
	mux.HandleFunc("PATCH /api/projects/{id}", h.Projects.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", h.Projects.Delete)
	mux.HandleFunc("GET /api/projects/{id}/document", h.Projects.Document)
	mux.HandleFunc("PUT /api/projects/{id}/document", h.Projects.AttachDocument)
	mux.HandleFunc("GET /api/projects/{id}/activity", h.Projects.Activity)

	mux.HandleFunc("GET /api/modules", h.Modules.List)
	mux.HandleFunc("POST /api/modules", h.Modules.Create)
	mux.HandleFunc("GET /api/modules/{id}", h.Modules.Get)
	mux.HandleFunc("PATCH /api/modules/{id}", h.Modules.Update)
	mux.HandleFunc("DELETE /api/modules/{id}", h.Modules.Delete)

	mux.HandleFunc("GET /api/sprints", h.Sprints.List)
	mux.HandleFunc("POST /api/sprints", h.Sprints.Create)
	mux.HandleFunc("GET /api/sprints/{id}", h.Sprints.Get)
	mux.HandleFunc("PATCH /api/sprints/{id}", h.Sprints.Update)
	mux.HandleFunc("DELETE /api/sprints/{id}", h.Sprints.Delete)

	mux.HandleFunc("GET /api/tasks", h.Tasks.List)
	mux.HandleFunc("POST /api/tasks", h.Tasks.Create)
	mux.HandleFunc("GET /api/tasks/{id}", h.Tasks.Get)
	mux.HandleFunc("PATCH /api/tasks/{id}", h.Tasks.Update)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.Tasks.Delete)

	mux.HandleFunc("GET /api/timesheets", h.Timesheets.List)
	mux.HandleFunc("POST /api/timesheets", h.Timesheets.Create)
	mux.HandleFunc("GET /api/timesheets/summary", h.Timesheets.Summary)
	mux.HandleFunc("POST /api/timesheets/{id}/approve", h.Timesheets.Approve)

	mux.HandleFunc("GET /api/change-logs", h.ChangeLogs.List)

	mux.HandleFunc("GET /api/users", h.Users.List)
	mux.HandleFunc("GET /api/users/{id}", h.Users.Get)
	mux.HandleFunc("PUT /api/users/{id}/role", h.Users.SetRole)

	return mux
}
