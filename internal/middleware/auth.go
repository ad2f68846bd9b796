package middleware

import (
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/authz"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const callerKey = "caller"

// Protected verifies the bearer token and stores the typed caller in the
// request context. The jwt middleware checks signature and expiry; the
// token service re-checks issuer, audience, and issued-at and extracts
// the claim set. Every failure is the same 401 to the client.
func Protected(cfg *config.Config, tokens *services.TokenService) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok || token == nil {
				return unauthorized(c)
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c)
			}
			caller, err := tokens.CallerFromClaims(claims)
			if err != nil {
				return unauthorized(c)
			}
			c.Locals(callerKey, caller)
			return c.Next()
		},
	})
}

// Caller returns the authenticated identity stored by Protected.
func Caller(c *fiber.Ctx) (authz.Caller, bool) {
	caller, ok := c.Locals(callerKey).(authz.Caller)
	return caller, ok
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized: invalid or expired token",
	})
}
