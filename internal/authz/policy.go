// Package authz is the single policy surface for the backend. Every
// mutating or resource-scoped operation builds a Check and passes it to
// Evaluate; no endpoint carries its own role or ownership logic.
package authz

import (
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/google/uuid"
)

// Caller is the authenticated identity extracted from token claims.
type Caller struct {
	ID       uuid.UUID
	Role     models.Role
	Email    string
	Username string
}

// Check describes one operation's policy: which roles may invoke it and,
// optionally, which identity must own the target resource.
type Check struct {
	// Roles is the required role-set. Empty means any authenticated role.
	Roles []models.Role

	// Owner, when set, requires caller.ID == *Owner.
	Owner *uuid.UUID

	// AdminOverridesOwner lets an Admin pass the ownership predicate.
	// Job and User resources set this; notifications never do.
	AdminOverridesOwner bool
}

// Evaluate returns nil if the caller may proceed, apperrors.ErrForbidden
// otherwise.
func Evaluate(caller Caller, check Check) error {
	if len(check.Roles) > 0 && !roleIn(caller.Role, check.Roles) {
		return apperrors.ErrForbidden
	}
	if check.Owner != nil && caller.ID != *check.Owner {
		if !(check.AdminOverridesOwner && caller.Role == models.RoleAdmin) {
			return apperrors.ErrForbidden
		}
	}
	return nil
}

func roleIn(role models.Role, set []models.Role) bool {
	for _, r := range set {
		if r == role {
			return true
		}
	}
	return false
}
