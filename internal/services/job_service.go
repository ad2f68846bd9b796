package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/authz"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobService owns the job lifecycle. Mutations go through the policy
// evaluator: managers may only touch their own postings, admins may touch
// any.
type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

func (s *JobService) Create(caller authz.Caller, req *dto.JobRequest) (*models.Job, error) {
	if err := authz.Evaluate(caller, authz.Check{Roles: []models.Role{models.RoleManager}}); err != nil {
		return nil, err
	}

	job := models.Job{
		ID:                  uuid.New(),
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		EmploymentType:      req.EmploymentType,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		CompanyName:         req.CompanyName,
		PostedDate:          time.Now().UTC(),
		ApplicationDeadline: req.ApplicationDeadline,
		ManagerID:           caller.ID,
	}
	if err := s.db.Create(&job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &job, nil
}

func (s *JobService) Get(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := s.db.Preload("Manager").First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (s *JobService) ListAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.db.Preload("Manager").Order("posted_date DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListByManager returns the caller's own postings.
func (s *JobService) ListByManager(caller authz.Caller) ([]models.Job, error) {
	if err := authz.Evaluate(caller, authz.Check{Roles: []models.Role{models.RoleManager}}); err != nil {
		return nil, err
	}
	var jobs []models.Job
	err := s.db.Preload("Manager").
		Where("manager_id = ?", caller.ID).
		Order("posted_date DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) Update(caller authz.Caller, id uuid.UUID, req *dto.JobRequest) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := authz.Evaluate(caller, authz.Check{
		Roles:               []models.Role{models.RoleManager, models.RoleAdmin},
		Owner:               &job.ManagerID,
		AdminOverridesOwner: true,
	}); err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Location = req.Location
	job.EmploymentType = req.EmploymentType
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax
	job.CompanyName = req.CompanyName
	job.ApplicationDeadline = req.ApplicationDeadline
	job.PostedDate = time.Now().UTC()

	if err := s.db.Save(job).Error; err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// Delete removes a job, its applications, and detaches its notifications
// in one transaction. The FK constraints enforce the same shape at the
// storage level.
func (s *JobService) Delete(caller authz.Caller, id uuid.UUID) error {
	job, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := authz.Evaluate(caller, authz.Check{
		Roles:               []models.Role{models.RoleManager, models.RoleAdmin},
		Owner:               &job.ManagerID,
		AdminOverridesOwner: true,
	}); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Notification{}).Where("job_id = ?", job.ID).
			Update("job_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, "id = ?", job.ID).Error
	})
}
