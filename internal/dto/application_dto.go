package dto

import "github.com/google/uuid"

type ApplyRequest struct {
	CoverLetter *string `json:"cover_letter" validate:"omitempty,max=1000"`
	ResumeURL   *string `json:"resume_url" validate:"omitempty,max=500"`
}

type ApplyResponse struct {
	Message       string    `json:"message"`
	ApplicationID uuid.UUID `json:"application_id"`
}
