package authz

import (
	"errors"
	"testing"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/google/uuid"
)

func TestEvaluateRoleSet(t *testing.T) {
	caller := Caller{ID: uuid.New(), Role: models.RoleApplicant}

	err := Evaluate(caller, Check{Roles: []models.Role{models.RoleManager}})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("role outside set: got %v, want ErrForbidden", err)
	}

	err = Evaluate(caller, Check{Roles: []models.Role{models.RoleManager, models.RoleApplicant}})
	if err != nil {
		t.Fatalf("role inside set: got %v, want nil", err)
	}
}

func TestEvaluateEmptyRoleSetAllowsAnyRole(t *testing.T) {
	for _, role := range []models.Role{models.RoleApplicant, models.RoleManager, models.RoleAdmin} {
		caller := Caller{ID: uuid.New(), Role: role}
		if err := Evaluate(caller, Check{}); err != nil {
			t.Fatalf("role %s with empty set: got %v, want nil", role, err)
		}
	}
}

func TestEvaluateOwnership(t *testing.T) {
	owner := uuid.New()
	caller := Caller{ID: owner, Role: models.RoleManager}

	if err := Evaluate(caller, Check{Owner: &owner}); err != nil {
		t.Fatalf("owner access: got %v, want nil", err)
	}

	stranger := Caller{ID: uuid.New(), Role: models.RoleManager}
	err := Evaluate(stranger, Check{Owner: &owner})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("non-owner access: got %v, want ErrForbidden", err)
	}
}

func TestEvaluateAdminBypass(t *testing.T) {
	owner := uuid.New()
	admin := Caller{ID: uuid.New(), Role: models.RoleAdmin}

	err := Evaluate(admin, Check{
		Roles:               []models.Role{models.RoleManager, models.RoleAdmin},
		Owner:               &owner,
		AdminOverridesOwner: true,
	})
	if err != nil {
		t.Fatalf("admin with override: got %v, want nil", err)
	}

	// Without the override the admin is just another non-owner. This is
	// how notifications stay private even from admins.
	err = Evaluate(admin, Check{Owner: &owner})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("admin without override: got %v, want ErrForbidden", err)
	}
}

func TestEvaluateOwnershipDoesNotRescueWrongRole(t *testing.T) {
	owner := uuid.New()
	caller := Caller{ID: owner, Role: models.RoleApplicant}

	err := Evaluate(caller, Check{
		Roles: []models.Role{models.RoleManager},
		Owner: &owner,
	})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("owner with wrong role: got %v, want ErrForbidden", err)
	}
}
