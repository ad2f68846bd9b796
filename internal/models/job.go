package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title               string    `gorm:"not null;size:100" json:"title"`
	Description         string    `gorm:"not null;size:500" json:"description"`
	Location            string    `gorm:"not null;size:100" json:"location"`
	EmploymentType      string    `gorm:"not null;size:50" json:"employment_type"`
	SalaryMin           *float64  `gorm:"type:numeric(18,2)" json:"salary_min"`
	SalaryMax           *float64  `gorm:"type:numeric(18,2)" json:"salary_max"`
	CompanyName         string    `gorm:"not null;size:255" json:"company_name"`
	PostedDate          time.Time `gorm:"not null" json:"posted_date"`
	ApplicationDeadline time.Time `gorm:"not null" json:"application_deadline"`
	ManagerID           uuid.UUID `gorm:"type:uuid;not null;index" json:"manager_id"`
	Manager             User      `gorm:"foreignKey:ManagerID;constraint:OnDelete:CASCADE" json:"-"`
}
