package sprint

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// CreateSprintInput holds the parameters for creating a sprint.
type CreateSprintInput struct {
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Status    *string   `json:"status"`
	Notes     *string   `json:"notes"`
}

// Validate checks all fields and collects all errors.
func (i CreateSprintInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.ProjectID, validation.By(func(v any) error {
			if v.(uuid.UUID) == uuid.Nil {
				return validation.NewError("validation_required", "is required")
			}
			return nil
		})),
		validation.Field(&i.Name, validation.By(notBlank), validation.RuneLength(0, 200)),
		validation.Field(&i.StartDate, validation.Required, validation.By(domain.DateString)),
		validation.Field(&i.EndDate, validation.Required, validation.By(domain.DateString)),
		validation.Field(&i.Status, validation.By(sprintStatus)),
	))
}

// UpdateSprintInput is a patch: nil fields keep their value.
type UpdateSprintInput struct {
	Name      *string `json:"name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
}

// Validate checks all fields and collects all errors.
func (i UpdateSprintInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.By(notBlank), validation.RuneLength(0, 200)),
		validation.Field(&i.StartDate, validation.By(notBlank), validation.By(domain.DateString)),
		validation.Field(&i.EndDate, validation.By(notBlank), validation.By(domain.DateString)),
		validation.Field(&i.Status, validation.By(sprintStatus)),
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

func sprintStatus(v any) error {
	val, _ := validation.Indirect(v)
	s, _ := val.(string)
	if s == "" {
		return nil
	}
	if !domain.SprintStatus(strings.ToLower(strings.TrimSpace(s))).IsValid() {
		return validation.NewError("validation_in_invalid", "must be one of planned, active, completed")
	}
	return nil
}
