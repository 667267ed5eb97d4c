package project

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Status      *string     `json:"status"`
	StartDate   *string     `json:"start_date"`
	EndDate     *string     `json:"end_date"`
	OrgCode     *string     `json:"org_code"`
	Members     []uuid.UUID `json:"members"`
	Modules     []string    `json:"modules"`
	// Document is set from the multipart upload, never from JSON.
	Document *domain.Document `json:"-"`
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.By(notBlank), validation.RuneLength(0, 200)),
		validation.Field(&i.Status, validation.By(projectStatus)),
		validation.Field(&i.StartDate, validation.By(domain.DateString)),
		validation.Field(&i.EndDate, validation.By(domain.DateString)),
		validation.Field(&i.OrgCode, validation.By(orgCode)),
	))
}

// UpdateProjectInput is a patch: nil fields keep their value. Members, when
// non-nil, replace the member set. Modules are appended.
type UpdateProjectInput struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Status      *string      `json:"status"`
	StartDate   *string      `json:"start_date"`
	EndDate     *string      `json:"end_date"`
	Members     *[]uuid.UUID `json:"members"`
	Modules     []string     `json:"modules"`
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.By(notBlank), validation.RuneLength(0, 200)),
		validation.Field(&i.Status, validation.By(projectStatus)),
		validation.Field(&i.StartDate, validation.By(domain.DateString)),
		validation.Field(&i.EndDate, validation.By(domain.DateString)),
	))
}

func notBlank(v any) error {
	val, _ := validation.Indirect(v)
	s, ok := val.(string)
	if ok && strings.TrimSpace(s) == "" {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}

func projectStatus(v any) error {
	val, _ := validation.Indirect(v)
	s, _ := val.(string)
	if s == "" {
		return nil
	}
	if !domain.ProjectStatus(strings.ToLower(strings.TrimSpace(s))).IsValid() {
		return validation.NewError("validation_in_invalid", "must be one of active, on_hold, completed, archived")
	}
	return nil
}

func orgCode(v any) error {
	val, _ := validation.Indirect(v)
	s, _ := val.(string)
	if strings.Contains(s, "/") {
		return validation.NewError("validation_org_code", "must not contain '/'")
	}
	return nil
}
