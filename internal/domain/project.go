package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is the root of the ownership tree: modules, sprints and tasks
// belong to exactly one project.
type Project struct {
	ID            uuid.UUID     `json:"id"                        db:"id"`
	OrgCode       string        `json:"org_code"                  db:"org_code"`
	ProjectCode   string        `json:"project_code"              db:"project_code"`
	Version       int           `json:"version"                   db:"version"`
	Name          string        `json:"name"                      db:"name"`
	Description   *string       `json:"description"               db:"description"`
	Status        ProjectStatus `json:"status"                    db:"status"`
	StartDate     *time.Time    `json:"start_date"                db:"start_date"`
	EndDate       *time.Time    `json:"end_date"                  db:"end_date"`
	CreatedBy     *uuid.UUID    `json:"created_by"                db:"created_by"`
	CreatedByName *string       `json:"created_by_name,omitempty" db:"created_by_name"`
	DocumentName  *string       `json:"document_name"             db:"document_name"`
	DocumentType  *string       `json:"document_type"             db:"document_type"`
	HasDocument   bool          `json:"has_document"              db:"has_document"`
	Members       []uuid.UUID   `json:"members"                   db:"-"`
	CreatedAt     time.Time     `json:"created_at"                db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"                db:"updated_at"`
}

// Document is an opaque file attached to a project. Its content is never
// interpreted and never copied into change log snapshots.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

// Module is a named, serial-numbered slice of a project.
type Module struct {
	ID           uuid.UUID `json:"id"                     db:"id"`
	ProjectID    uuid.UUID `json:"project_id"             db:"project_id"`
	Name         string    `json:"name"                   db:"name"`
	ModuleCode   string    `json:"module_code"            db:"module_code"`
	ModuleSerial int       `json:"module_serial"          db:"module_serial"`
	ProjectName  *string   `json:"project_name,omitempty" db:"project_name"`
	CreatedAt    time.Time `json:"created_at"             db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"             db:"updated_at"`
}

// DefaultModuleCode is the code prefix given to modules when none is supplied.
const DefaultModuleCode = "R"

// Sprint is a dated iteration inside a project.
type Sprint struct {
	ID           uuid.UUID    `json:"id"                     db:"id"`
	ProjectID    uuid.UUID    `json:"project_id"             db:"project_id"`
	SprintNumber int          `json:"sprint_number"          db:"sprint_number"`
	Name         string       `json:"name"                   db:"name"`
	StartDate    time.Time    `json:"start_date"             db:"start_date"`
	EndDate      time.Time    `json:"end_date"               db:"end_date"`
	Status       SprintStatus `json:"status"                 db:"status"`
	Notes        *string      `json:"notes"                  db:"notes"`
	ProjectName  *string      `json:"project_name,omitempty" db:"project_name"`
	CreatedAt    time.Time    `json:"created_at"             db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"             db:"updated_at"`
}
