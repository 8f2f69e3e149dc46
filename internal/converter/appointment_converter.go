package converter

import (
	"consulta-api/internal/delivery/dto"
	"consulta-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
// Professional name and occupation are flattened into the response so list
// endpoints carry them without nesting.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                     appointment.ID,
		ProfessionalID:         appointment.ProfessionalID,
		ProfessionalName:       appointment.Professional.Name,
		ProfessionalOccupation: appointment.Professional.Occupation,
		ScheduledAt:            appointment.ScheduledAt,
		CreatedAt:              appointment.CreatedAt,
		UpdatedAt:              appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
