package usecase

import (
	"strings"
	"testing"
	"time"

	"consulta-api/internal/domain/entity"

	"github.com/google/uuid"
)

func TestScheduleViolationsFuturity(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		scheduledAt time.Time
		wantError   bool
	}{
		{"one day ahead", now.AddDate(0, 0, 1), false},
		{"one second ahead", now.Add(time.Second), false},
		{"exactly now", now, true},
		{"one second ago", now.Add(-time.Second), true},
		{"one day ago", now.AddDate(0, 0, -1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := scheduleViolations(tt.scheduledAt, now, nil)

			if tt.wantError {
				if details == nil || len(details[fieldScheduledAt]) == 0 {
					t.Errorf("expected a scheduled_at violation, got %v", details)
				}
			} else if details != nil {
				t.Errorf("expected no violations, got %v", details)
			}
		})
	}
}

func TestScheduleViolationsConflict(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	slot := now.AddDate(0, 0, 1)

	conflicting := &entity.Appointment{
		ID:          uuid.New(),
		ScheduledAt: slot,
		Professional: entity.Professional{
			Name: "Dra. Carla",
		},
	}

	details := scheduleViolations(slot, now, conflicting)
	if details == nil {
		t.Fatal("expected a conflict violation")
	}
	if len(details[fieldScheduledAt]) != 0 {
		t.Errorf("future slot reported a futurity violation: %v", details)
	}

	messages := details[fieldNonField]
	if len(messages) != 1 {
		t.Fatalf("non_field messages = %v, want exactly one", messages)
	}
	if !strings.Contains(messages[0], "Dra. Carla") {
		t.Errorf("conflict message does not name the professional: %q", messages[0])
	}
}

func TestScheduleViolationsAggregatesBothRules(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	pastSlot := now.AddDate(0, 0, -1)

	conflicting := &entity.Appointment{
		ScheduledAt:  pastSlot,
		Professional: entity.Professional{Name: "Dr. João"},
	}

	details := scheduleViolations(pastSlot, now, conflicting)
	if details == nil {
		t.Fatal("expected violations")
	}
	if len(details[fieldScheduledAt]) == 0 {
		t.Error("missing futurity violation")
	}
	if len(details[fieldNonField]) == 0 {
		t.Error("missing conflict violation")
	}
}

func TestScheduleViolationsNoConflictWhenSlotFree(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	if details := scheduleViolations(now.AddDate(0, 0, 2), now, nil); details != nil {
		t.Errorf("free future slot reported violations: %v", details)
	}
}

func TestConflictDetails(t *testing.T) {
	slot := time.Date(2024, time.June, 2, 14, 30, 0, 0, time.UTC)
	details := conflictDetails("Dra. Carla", slot)

	messages := details[fieldNonField]
	if len(messages) != 1 {
		t.Fatalf("non_field messages = %v, want exactly one", messages)
	}
	if !strings.Contains(messages[0], "02/06/2024 14:30") {
		t.Errorf("conflict message missing formatted instant: %q", messages[0])
	}
}
