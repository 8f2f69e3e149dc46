package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a booking of a professional at an exact instant.
// The (professional_id, scheduled_at) pair is unique at the storage layer;
// see the uniq_professional_scheduled_at constraint in the migrations.
type Appointment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_professional_scheduled_at" json:"professional_id"`
	ScheduledAt    time.Time `gorm:"type:timestamptz;not null;index;uniqueIndex:uniq_professional_scheduled_at" json:"scheduled_at"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
