package handlers

import (
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type JobHandler struct {
	jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	job, err := h.jobs.Create(caller, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateJobResponse{
		Message: "Job created successfully!",
		JobID:   job.ID,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid job id")
	}

	job, err := h.jobs.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(jobResponse(job))
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.jobs.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(jobResponses(jobs))
}

func (h *JobHandler) ListMine(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}

	jobs, err := h.jobs.ListByManager(caller)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(jobResponses(jobs))
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid job id")
	}

	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	if _, err := h.jobs.Update(caller, id, &req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Job updated successfully"})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid job id")
	}

	if err := h.jobs.Delete(caller, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Job deleted successfully"})
}

func jobResponse(j *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:                  j.ID,
		Title:               j.Title,
		Description:         j.Description,
		Location:            j.Location,
		EmploymentType:      j.EmploymentType,
		SalaryMin:           j.SalaryMin,
		SalaryMax:           j.SalaryMax,
		CompanyName:         j.CompanyName,
		PostedDate:          j.PostedDate,
		ApplicationDeadline: j.ApplicationDeadline,
		ManagerID:           j.ManagerID,
		ManagerUsername:     j.Manager.Username,
		ManagerName:         j.Manager.Name,
		ManagerSurname:      j.Manager.Surname,
		ManagerImage:        j.Manager.Image,
	}
}

func jobResponses(jobs []models.Job) []dto.JobResponse {
	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, jobResponse(&jobs[i]))
	}
	return out
}
