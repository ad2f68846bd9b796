package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the service outcome taxonomy to HTTP statuses in one
// place. Anything outside the taxonomy is a 500 with details kept
// server-side.
func respondError(c *fiber.Ctx, err error) error {
	if ve, ok := apperrors.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Error:   true,
			Message: "Validation failed",
			Fields:  ve.Fields,
		})
	}

	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid email or password",
		})
	case errors.Is(err, apperrors.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "You are not authorized to perform this action",
		})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Resource not found",
		})
	case errors.Is(err, apperrors.ErrEmailTaken),
		errors.Is(err, apperrors.ErrUsernameTaken),
		errors.Is(err, apperrors.ErrAlreadyApplied):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}
