package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a short feed entry published by an applicant or manager. Image
// hosting is external; only the URL is stored.
type Post struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Description string    `gorm:"not null;size:500" json:"description"`
	ImageURL    *string   `gorm:"size:500" json:"image_url"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Author      User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
