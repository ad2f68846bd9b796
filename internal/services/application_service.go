package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/authz"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationService is the application intake workflow. It owns the
// "one application per (job, applicant)" rule and creates the application
// together with its confirmation notification as one unit.
type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// Apply submits an application for jobID on behalf of the caller.
//
// Only applicants may apply; managers and admins are rejected outright.
// The duplicate pre-check is a fast path for a better error message — the
// unique index on (job_id, applicant_id) is the authoritative guard, and
// a duplicate-key failure on insert maps to the same conflict outcome.
func (s *ApplicationService) Apply(caller authz.Caller, jobID uuid.UUID, req *dto.ApplyRequest) (*models.JobApplication, error) {
	if caller.Role == models.RoleManager || caller.Role == models.RoleAdmin {
		slog.Warn("apply rejected: managers and admins cannot apply for jobs",
			"user_id", caller.ID, "role", caller.Role, "job_id", jobID)
		return nil, apperrors.ErrForbidden
	}
	if err := authz.Evaluate(caller, authz.Check{Roles: []models.Role{models.RoleApplicant}}); err != nil {
		return nil, err
	}

	var job models.Job
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.JobApplication{}).
		Where("job_id = ? AND applicant_id = ?", jobID, caller.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.ErrAlreadyApplied
	}

	now := time.Now().UTC()
	application := models.JobApplication{
		ID:              uuid.New(),
		JobID:           job.ID,
		ApplicantID:     caller.ID,
		ApplicationDate: now,
		Status:          models.ApplicationStatusPending,
		CoverLetter:     req.CoverLetter,
		ResumeURL:       req.ResumeURL,
	}
	notification := models.Notification{
		ID:          uuid.New(),
		RecipientID: caller.ID,
		JobID:       &job.ID,
		Message:     ConfirmationMessage(&job),
		Type:        models.NotificationTypeJobApplicationConfirmation,
		IsRead:      false,
		CreatedAt:   now,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&application).Error; err != nil {
			return err
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent apply for the same pair.
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	slog.Info("application submitted", "user_id", caller.ID, "job_id", job.ID,
		"application_id", application.ID)
	return &application, nil
}

// ListByUser returns the caller's own applications, newest first.
func (s *ApplicationService) ListByUser(caller authz.Caller) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := s.db.Preload("Job").
		Where("applicant_id = ?", caller.ID).
		Order("application_date DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// ConfirmationMessage builds the notification text for a submitted
// application.
func ConfirmationMessage(job *models.Job) string {
	return fmt.Sprintf("You successfully applied for '%s'. The application deadline is %s.",
		job.Title, job.ApplicationDeadline.Format("01/02/2006"))
}
