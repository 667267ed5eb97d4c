package timesheet

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// CreateTimesheetInput holds a manual time entry of the caller.
type CreateTimesheetInput struct {
	TaskID        *uuid.UUID `json:"task_id"`
	LogDate       *string    `json:"log_date"`
	MinutesLogged int        `json:"minutes_logged"`
	Notes         *string    `json:"notes"`
}

// Validate checks all fields and collects all errors.
func (i CreateTimesheetInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.MinutesLogged, validation.Required.Error("must be greater than zero"), validation.Min(1), validation.Max(24*60)),
		validation.Field(&i.LogDate, validation.By(domain.DateString)),
		validation.Field(&i.Notes, validation.RuneLength(0, 1000)),
	))
}

// ListInput filters timesheet listings. Dates are inclusive.
type ListInput struct {
	UserID *uuid.UUID `json:"user_id"`
	TaskID *uuid.UUID `json:"task_id"`
	From   *string    `json:"from"`
	To     *string    `json:"to"`
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.From, validation.By(domain.DateString)),
		validation.Field(&i.To, validation.By(domain.DateString)),
	))
}

// SummaryInput bounds the weekly summary. Both dates are required.
type SummaryInput struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Validate checks all fields and collects all errors.
func (i SummaryInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.From, validation.Required, validation.By(domain.DateString)),
		validation.Field(&i.To, validation.Required, validation.By(domain.DateString)),
	))
}
