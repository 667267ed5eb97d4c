package changelog

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// ListInput filters the change log. Zero values do not filter; a zero
// Limit returns every match.
type ListInput struct {
	EntityType string     `json:"entity_type"`
	EntityID   *uuid.UUID `json:"entity_id"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

// Validate checks the filter values.
func (i ListInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.EntityType, validation.By(func(v any) error {
			s, _ := v.(string)
			if s == "" || domain.EntityType(strings.ToLower(s)).IsValid() {
				return nil
			}
			return fmt.Errorf("unknown entity type %q", s)
		})),
		validation.Field(&i.Limit, validation.Min(0)),
		validation.Field(&i.Offset, validation.Min(0)),
	))
}

// List returns change log rows newest first.
func (r *Reader) List(ctx context.Context, in ListInput) ([]domain.ChangeLog, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	f := domain.ChangeLogFilter{EntityID: in.EntityID, Limit: in.Limit, Offset: in.Offset}
	if in.EntityType != "" {
		et := domain.EntityType(strings.ToLower(in.EntityType))
		f.EntityType = &et
	}

	rows, err := r.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list change logs: %w", err)
	}
	if rows == nil {
		rows = []domain.ChangeLog{}
	}
	return rows, nil
}

// ProjectActivity returns the newest rows about the project and the tasks
// and modules currently in it, capped at the configured page size.
func (r *Reader) ProjectActivity(ctx context.Context, projectID uuid.UUID) ([]domain.ChangeLog, error) {
	rows, err := r.repo.ProjectActivity(ctx, projectID, r.pageSize)
	if err != nil {
		return nil, fmt.Errorf("project activity: %w", err)
	}
	if rows == nil {
		rows = []domain.ChangeLog{}
	}
	return rows, nil
}
