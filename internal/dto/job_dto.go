package dto

import (
	"time"

	"github.com/google/uuid"
)

type JobRequest struct {
	Title               string    `json:"title" validate:"required,max=100"`
	Description         string    `json:"description" validate:"required,max=500"`
	Location            string    `json:"location" validate:"required,max=100"`
	EmploymentType      string    `json:"employment_type" validate:"required,max=50"`
	SalaryMin           *float64  `json:"salary_min" validate:"omitempty,gte=0,lte=1000000"`
	SalaryMax           *float64  `json:"salary_max" validate:"omitempty,gte=0,lte=1000000"`
	CompanyName         string    `json:"company_name" validate:"required,max=255"`
	ApplicationDeadline time.Time `json:"application_deadline" validate:"required"`
}

type JobResponse struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Location            string    `json:"location"`
	EmploymentType      string    `json:"employment_type"`
	SalaryMin           *float64  `json:"salary_min"`
	SalaryMax           *float64  `json:"salary_max"`
	CompanyName         string    `json:"company_name"`
	PostedDate          time.Time `json:"posted_date"`
	ApplicationDeadline time.Time `json:"application_deadline"`
	ManagerID           uuid.UUID `json:"manager_id"`
	ManagerUsername     string    `json:"manager_username"`
	ManagerName         string    `json:"manager_name"`
	ManagerSurname      string    `json:"manager_surname"`
	ManagerImage        *string   `json:"manager_image"`
}

type CreateJobResponse struct {
	Message string    `json:"message"`
	JobID   uuid.UUID `json:"job_id"`
}
