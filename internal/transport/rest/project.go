package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/project"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	Create(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, id uuid.UUID, input project.UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AttachDocument(ctx context.Context, id uuid.UUID, doc domain.Document) (*domain.Project, error)
	Document(ctx context.Context, id uuid.UUID) (*domain.Document, error)
}

type activityReader interface {
	ProjectActivity(ctx context.Context, projectID uuid.UUID) ([]domain.ChangeLog, error)
}

// ProjectHandler serves project REST endpoints.
type ProjectHandler struct {
	svc      projectService
	activity activityReader
	maxDoc   int64
	log      *slog.Logger
}

// NewProjectHandler creates a ProjectHandler. maxDocumentBytes bounds the
// multipart upload size.
func NewProjectHandler(svc projectService, activity activityReader, maxDocumentBytes int64, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		svc:      svc,
		activity: activity,
		maxDoc:   maxDocumentBytes,
		log:      logger.With("handler", "project"),
	}
}

const (
	documentField = "document"
	payloadField  = "payload"
	// multipartOverhead leaves room for the payload field and part headers.
	multipartOverhead = 1 << 20
)

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// Create handles POST /api/projects. The body is either JSON or
// multipart/form-data with the JSON in "payload" and the file in "document".
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input project.CreateProjectInput

	if isMultipart(r) {
		doc, err := h.readMultipart(w, r, &input)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		input.Document = doc
	} else if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Update handles PATCH /api/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var input project.UpdateProjectInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeMessage(w, "Project deleted")
}

// Document handles GET /api/projects/{id}/document.
func (h *ProjectHandler) Document(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := h.svc.Document(r.Context(), id)
	var nf *domain.NotFoundError
	if errors.As(err, &nf) && nf.Entity == "document" {
		writeError(w, http.StatusNotFound, "No document uploaded")
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Name}))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Data) //nolint:errcheck
}

// AttachDocument handles PUT /api/projects/{id}/document with a multipart
// body carrying the file in "document".
func (h *ProjectHandler) AttachDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !isMultipart(r) {
		writeError(w, http.StatusBadRequest, "document: multipart/form-data required")
		return
	}

	doc, err := h.readMultipart(w, r, nil)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if doc == nil {
		writeError(w, http.StatusBadRequest, "document: is required")
		return
	}

	p, err := h.svc.AttachDocument(r.Context(), id, *doc)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Activity handles GET /api/projects/{id}/activity.
func (h *ProjectHandler) Activity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rows, err := h.activity.ProjectActivity(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// readMultipart parses the upload. When payload is non-nil the "payload"
// field is decoded into it. The returned document is nil when no file was
// sent.
func (h *ProjectHandler) readMultipart(w http.ResponseWriter, r *http.Request, payload any) (*domain.Document, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxDoc+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxDoc + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.NewValidationError(documentField, "file too large")
		}
		return nil, domain.NewValidationError("body", "invalid multipart form")
	}

	if payload != nil {
		if raw := r.FormValue(payloadField); raw != "" {
			if err := json.Unmarshal([]byte(raw), payload); err != nil {
				return nil, domain.NewValidationError(payloadField, "invalid JSON")
			}
		}
	}

	file, header, err := r.FormFile(documentField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewValidationError(documentField, "unreadable file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, domain.NewValidationError(documentField, "unreadable file")
	}

	return &domain.Document{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.EqualFold(mediaType, "multipart/form-data")
}
