package repository

import (
	"errors"

	"consulta-api/internal/domain/entity"
	domainRepo "consulta-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func (r *professionalRepository) Create(db *gorm.DB, professional *entity.Professional) error {
	return db.Create(professional).Error
}

func (r *professionalRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.Where("id = ?", id).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) FindAll(db *gorm.DB, filter *entity.ProfessionalFilter) ([]entity.Professional, error) {
	var professionals []entity.Professional
	query := db.Model(&entity.Professional{})

	if filter != nil {
		if filter.Name != "" {
			query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.Occupation != "" {
			query = query.Where("occupation ILIKE ?", "%"+filter.Occupation+"%")
		}
		if filter.Address != "" {
			query = query.Where("address ILIKE ?", "%"+filter.Address+"%")
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where("name ILIKE ? OR occupation ILIKE ?", pattern, pattern)
		}
	}

	err := query.Order("name ASC").Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *professionalRepository) Update(db *gorm.DB, professional *entity.Professional) error {
	return db.Omit("Appointments").Save(professional).Error
}

// Delete removes the professional; appointments referencing it are removed by
// the ON DELETE CASCADE foreign key.
func (r *professionalRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Professional{})
	return affected.RowsAffected, affected.Error
}
