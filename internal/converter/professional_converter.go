package converter

import (
	"consulta-api/internal/delivery/dto"
	"consulta-api/internal/domain/entity"
)

// ProfessionalToResponse converts a Professional entity to its response DTO
func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:         professional.ID,
		Name:       professional.Name,
		Occupation: professional.Occupation,
		Address:    professional.Address,
		Contact:    professional.Contact,
		CreatedAt:  professional.CreatedAt,
		UpdatedAt:  professional.UpdatedAt,
	}
}

// ProfessionalsToResponses converts a slice of Professional entities
func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i := range professionals {
		responses[i] = *ProfessionalToResponse(&professionals[i])
	}
	return responses
}
