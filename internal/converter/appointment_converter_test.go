package converter

import (
	"testing"
	"time"

	"consulta-api/internal/domain/entity"

	"github.com/google/uuid"
)

func TestAppointmentToResponse(t *testing.T) {
	professionalID := uuid.New()
	scheduledAt := time.Date(2024, time.June, 1, 14, 0, 0, 0, time.UTC)

	appointment := &entity.Appointment{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		ScheduledAt:    scheduledAt,
		Professional: entity.Professional{
			ID:         professionalID,
			Name:       "Dra. Carla",
			Occupation: "Ginecologista",
		},
	}

	resp := AppointmentToResponse(appointment)
	if resp == nil {
		t.Fatal("nil response")
	}
	if resp.ID != appointment.ID {
		t.Errorf("ID = %s, want %s", resp.ID, appointment.ID)
	}
	if resp.ProfessionalID != professionalID {
		t.Errorf("ProfessionalID = %s, want %s", resp.ProfessionalID, professionalID)
	}
	if resp.ProfessionalName != "Dra. Carla" {
		t.Errorf("ProfessionalName = %q", resp.ProfessionalName)
	}
	if resp.ProfessionalOccupation != "Ginecologista" {
		t.Errorf("ProfessionalOccupation = %q", resp.ProfessionalOccupation)
	}
	if !resp.ScheduledAt.Equal(scheduledAt) {
		t.Errorf("ScheduledAt = %v, want %v", resp.ScheduledAt, scheduledAt)
	}
}

func TestAppointmentToResponseNil(t *testing.T) {
	if AppointmentToResponse(nil) != nil {
		t.Error("nil appointment should convert to nil response")
	}
}

func TestAppointmentsToResponsesKeepsOrder(t *testing.T) {
	first := entity.Appointment{ID: uuid.New(), Professional: entity.Professional{Name: "A"}}
	second := entity.Appointment{ID: uuid.New(), Professional: entity.Professional{Name: "B"}}

	responses := AppointmentsToResponses([]entity.Appointment{first, second})
	if len(responses) != 2 {
		t.Fatalf("len = %d, want 2", len(responses))
	}
	if responses[0].ID != first.ID || responses[1].ID != second.ID {
		t.Error("conversion reordered the slice")
	}
}

func TestAppointmentsToResponsesEmpty(t *testing.T) {
	responses := AppointmentsToResponses(nil)
	if responses == nil || len(responses) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", responses)
	}
}
