package repository

import (
	"consulta-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(db *gorm.DB, professional *entity.Professional) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Professional, error)
	FindAll(db *gorm.DB, filter *entity.ProfessionalFilter) ([]entity.Professional, error)
	Update(db *gorm.DB, professional *entity.Professional) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
