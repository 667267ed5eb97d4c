package domain

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FromValidation converts ozzo-validation errors into a *ValidationError so
// callers only ever match against ErrValidation. Non-validation errors (for
// example a rule that failed internally) are returned unchanged.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		var single validation.Error
		if errors.As(err, &single) {
			return NewValidationError("value", single.Error())
		}
		return err
	}

	fields := make([]string, 0, len(verrs))
	for f := range verrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		if verrs[f] == nil {
			continue
		}
		out = append(out, FieldError{Field: f, Message: verrs[f].Error()})
	}
	return NewValidationErrors(out)
}

// DateString is an ozzo rule function for optional date strings. Nil and
// empty values pass; anything else must parse with ParseDate.
func DateString(v any) error {
	val, _ := validation.Indirect(v)
	s, _ := val.(string)
	if s == "" {
		return nil
	}
	_, err := ParseDate(s)
	return err
}
