package auth

import (
	"context"
	"fmt"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/pkg/ctxutil"
)

// Authorizer resolves the authenticated actor from the request context and
// checks capabilities against a Policy.
type Authorizer struct {
	policy domain.Policy
}

// NewAuthorizer creates an Authorizer enforcing policy.
func NewAuthorizer(policy domain.Policy) *Authorizer {
	return &Authorizer{policy: policy}
}

// Actor returns the caller. A missing user id is ErrUnauthorized; a role
// claim that maps to no known role is ErrForbidden.
func (a *Authorizer) Actor(ctx context.Context) (domain.Actor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	role, err := domain.ParseUserRole(ctxutil.UserRoleFromCtx(ctx))
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", domain.ErrForbidden, err)
	}

	return domain.Actor{UserID: userID, Role: role}, nil
}

// Authorize returns the caller if their role holds capability c.
func (a *Authorizer) Authorize(ctx context.Context, c domain.Capability) (domain.Actor, error) {
	actor, err := a.Actor(ctx)
	if err != nil {
		return domain.Actor{}, err
	}
	if !a.policy.Allows(actor.Role, c) {
		return domain.Actor{}, fmt.Errorf("%w: role %s lacks %s", domain.ErrForbidden, actor.Role, c)
	}
	return actor, nil
}
