package models

import (
	"time"

	"github.com/google/uuid"
)

const ApplicationStatusPending = "Pending"

// JobApplication rows are created only through the application intake
// workflow. The composite unique index is the authoritative guard against
// a user applying to the same job twice; the workflow's pre-check is just
// the fast path.
type JobApplication struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	Job             Job       `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	ApplicantID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`
	Applicant       User      `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"-"`
	ApplicationDate time.Time `gorm:"not null" json:"application_date"`
	Status          string    `gorm:"not null;size:50;default:'Pending'" json:"status"`
	CoverLetter     *string   `gorm:"size:1000" json:"cover_letter"`
	ResumeURL       *string   `gorm:"size:500" json:"resume_url"`
}
