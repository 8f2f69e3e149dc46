package entity

import (
	"time"

	"github.com/google/uuid"
)

// Professional represents a bookable service provider
type Professional struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Occupation string    `gorm:"type:varchar(100);not null;index" json:"occupation"`
	Address    string    `gorm:"type:varchar(200)" json:"address"`
	Contact    string    `gorm:"type:varchar(100);not null" json:"contact"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
}

func (Professional) TableName() string {
	return "professionals"
}
