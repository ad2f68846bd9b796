package dto

import (
	"time"

	"github.com/google/uuid"
)

type PostRequest struct {
	Description string  `json:"description" validate:"required,max=500"`
	ImageURL    *string `json:"image_url" validate:"omitempty,max=500"`
}

type PostResponse struct {
	ID             uuid.UUID `json:"id"`
	Description    string    `json:"description"`
	ImageURL       *string   `json:"image_url"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	AuthorImage    *string   `json:"author_image"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
