package models

import (
	"time"

	"github.com/google/uuid"
)

const NotificationTypeJobApplicationConfirmation = "JobApplicationConfirmation"

type Notification struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Recipient   User       `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"-"`
	JobID       *uuid.UUID `gorm:"type:uuid" json:"job_id"`
	Job         *Job       `gorm:"foreignKey:JobID;constraint:OnDelete:SET NULL" json:"-"`
	Message     string     `gorm:"not null;size:500" json:"message"`
	Type        string     `gorm:"not null;size:100" json:"type"`
	IsRead      bool       `gorm:"not null;default:false" json:"is_read"`
	CreatedAt   time.Time  `json:"created_at"`
}
