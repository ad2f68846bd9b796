package middleware

import (
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/authz"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// RequireRoles gates a route to the given role-set. Ownership predicates
// stay in the services, next to the resource lookup; this only covers the
// role membership step of the policy.
func RequireRoles(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, ok := Caller(c)
		if !ok {
			return unauthorized(c)
		}
		if err := authz.Evaluate(caller, authz.Check{Roles: roles}); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "You do not have permission to perform this action",
			})
		}
		return c.Next()
	}
}
