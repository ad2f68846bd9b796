package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the single credential + profile record. Jobs, applications, and
// notifications are looked up by query rather than held as navigation
// collections on the user.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Username  string     `gorm:"not null;size:50;uniqueIndex" json:"username"`
	Password  string     `gorm:"not null" json:"-"`
	Role      Role       `gorm:"size:20;not null;default:'Applicant'" json:"role"`
	Name      string     `gorm:"size:50" json:"name"`
	Surname   string     `gorm:"size:50" json:"surname"`
	Address   *string    `gorm:"size:100" json:"address"`
	Birthdate *time.Time `json:"birthdate"`
	Gender    *string    `gorm:"size:20" json:"gender"`
	Phone     *string    `gorm:"size:20" json:"phone"`
	Image     *string    `gorm:"size:500" json:"image"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
