package handlers

import (
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return badRequest(c, "Invalid job id")
	}

	// Body is optional: an application without cover letter or resume is
	// valid.
	var req dto.ApplyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	application, err := h.applications.Apply(caller, jobID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.ApplyResponse{
		Message:       "Job application submitted successfully! You will receive a notification.",
		ApplicationID: application.ID,
	})
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}

	applications, err := h.applications.ListByUser(caller)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(applications)
}
