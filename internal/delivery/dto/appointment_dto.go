package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	ProfessionalID uuid.UUID `json:"professional_id" validate:"required"`
	ScheduledAt    time.Time `json:"scheduled_at" validate:"required"`
}

type UpdateAppointmentRequest struct {
	ProfessionalID uuid.UUID `json:"professional_id" validate:"required"`
	ScheduledAt    time.Time `json:"scheduled_at" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                     uuid.UUID `json:"id"`
	ProfessionalID         uuid.UUID `json:"professional_id"`
	ProfessionalName       string    `json:"professional_name"`
	ProfessionalOccupation string    `json:"professional_occupation"`
	ScheduledAt            time.Time `json:"scheduled_at"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type AppointmentSummaryResponse struct {
	TotalAppointments  int64 `json:"total_appointments"`
	FutureAppointments int64 `json:"future_appointments"`
	PastAppointments   int64 `json:"past_appointments"`
}
