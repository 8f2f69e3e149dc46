package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateProfessionalRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Occupation string `json:"occupation" validate:"required,min=3,max=100"`
	Address    string `json:"address" validate:"omitempty,max=200"`
	Contact    string `json:"contact" validate:"required,contact,max=100"`
}

type UpdateProfessionalRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2,max=100"`
	Occupation string `json:"occupation" validate:"omitempty,min=3,max=100"`
	Address    string `json:"address" validate:"omitempty,max=200"`
	Contact    string `json:"contact" validate:"omitempty,contact,max=100"`
}

// Response DTOs

type ProfessionalResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Occupation string    `json:"occupation"`
	Address    string    `json:"address"`
	Contact    string    `json:"contact"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}
