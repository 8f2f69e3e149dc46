package repository

import (
	"time"

	"consulta-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByProfessionalID(db *gorm.DB, professionalID uuid.UUID, dateMin, dateMax *time.Time) ([]entity.Appointment, error)
	// FindConflict returns the appointment occupying the exact
	// (professionalID, scheduledAt) slot, excluding excludeID when it is not
	// uuid.Nil. Returns nil when the slot is free.
	FindConflict(db *gorm.DB, professionalID uuid.UUID, scheduledAt time.Time, excludeID uuid.UUID) (*entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	Summary(db *gorm.DB, now time.Time) (*entity.AppointmentSummary, error)
}
