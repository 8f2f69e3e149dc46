package usecase

import (
	"fmt"
	"time"

	"consulta-api/internal/domain/entity"
)

// Field keys used in validation error payloads. Futurity violations are
// reported on the scheduled_at field, conflicts on the non-field key.
const (
	fieldScheduledAt = "scheduled_at"
	fieldNonField    = "non_field"
)

// ValidationError carries field-level details for client-input failures so
// the handler can surface every violated rule in a single response.
type ValidationError struct {
	Details map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// scheduleViolations runs the futurity and conflict checks for a proposed
// (professional, instant) pair. conflicting is the appointment already
// occupying the slot, or nil when the slot is free; self-exclusion on update
// happens at the lookup, not here. Both checks always run so the caller gets
// the aggregate of all violations, never just the first.
func scheduleViolations(scheduledAt, now time.Time, conflicting *entity.Appointment) map[string][]string {
	details := make(map[string][]string)

	if !scheduledAt.After(now) {
		details[fieldScheduledAt] = append(details[fieldScheduledAt], "scheduled_at must be in the future")
	}

	if conflicting != nil {
		message := fmt.Sprintf(
			"%s already has an appointment at %s",
			conflicting.Professional.Name,
			conflicting.ScheduledAt.Format("02/01/2006 15:04"),
		)
		details[fieldNonField] = append(details[fieldNonField], message)
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// conflictDetails builds the conflict-only payload used when the storage
// unique constraint rejects a write that passed the pre-check.
func conflictDetails(professionalName string, scheduledAt time.Time) map[string][]string {
	return map[string][]string{
		fieldNonField: {fmt.Sprintf(
			"%s already has an appointment at %s",
			professionalName,
			scheduledAt.Format("02/01/2006 15:04"),
		)},
	}
}
