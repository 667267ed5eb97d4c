package user

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// SetRoleInput holds the new role of a user. Any spelling accepted by
// domain.ParseUserRole is allowed.
type SetRoleInput struct {
	Role string `json:"role"`
}

// Validate checks all fields and collects all errors.
func (i SetRoleInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.Role, validation.Required, validation.By(userRole)),
	))
}

// PromoteInput is used by operators to bootstrap accounts from the command
// line. FullName is only needed when the user does not exist yet.
type PromoteInput struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Validate checks all fields and collects all errors.
func (i PromoteInput) Validate() error {
	return domain.FromValidation(validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.EmailFormat),
		validation.Field(&i.FullName, validation.RuneLength(0, 200)),
		validation.Field(&i.Role, validation.Required, validation.By(userRole)),
	))
}

func userRole(v any) error {
	val, _ := validation.Indirect(v)
	s, _ := val.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := domain.ParseUserRole(s); err != nil {
		return validation.NewError("validation_in_invalid", "must be one of admin, project_manager, developer, qa")
	}
	return nil
}
