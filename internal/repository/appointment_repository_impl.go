package repository

import (
	"errors"
	"time"

	"consulta-api/internal/domain/entity"
	domainRepo "consulta-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultAppointmentOrder = "appointments.scheduled_at DESC"

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Professional").Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Professional").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindAll applies a resolved AppointmentFilter. Every filter field is
// optional; calendar-date comparisons cast the timestamp, time-of-day
// comparisons cast to time, and the strict bounds carry the future/past
// keyword semantics.
func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Model(&entity.Appointment{}).
		Joins("JOIN professionals ON professionals.id = appointments.professional_id")

	orderBy := defaultAppointmentOrder
	if filter != nil {
		if filter.ProfessionalID != nil {
			query = query.Where("appointments.professional_id = ?", *filter.ProfessionalID)
		}
		if filter.ProfessionalName != "" {
			query = query.Where("professionals.name ILIKE ?", "%"+filter.ProfessionalName+"%")
		}
		if filter.Date != nil {
			query = query.Where("appointments.scheduled_at::date = ?", filter.Date.Format("2006-01-02"))
		}
		if filter.DateMin != nil {
			query = query.Where("appointments.scheduled_at::date >= ?", filter.DateMin.Format("2006-01-02"))
		}
		if filter.DateMax != nil {
			query = query.Where("appointments.scheduled_at::date <= ?", filter.DateMax.Format("2006-01-02"))
		}
		if filter.PeriodDate != nil {
			query = query.Where("appointments.scheduled_at::date = ?", filter.PeriodDate.Format("2006-01-02"))
		}
		if filter.PeriodDateMin != nil {
			query = query.Where("appointments.scheduled_at::date >= ?", filter.PeriodDateMin.Format("2006-01-02"))
		}
		if filter.PeriodDateMax != nil {
			query = query.Where("appointments.scheduled_at::date <= ?", filter.PeriodDateMax.Format("2006-01-02"))
		}
		if filter.From != nil {
			query = query.Where("appointments.scheduled_at >= ?", *filter.From)
		}
		if filter.To != nil {
			query = query.Where("appointments.scheduled_at <= ?", *filter.To)
		}
		if filter.After != nil {
			query = query.Where("appointments.scheduled_at > ?", *filter.After)
		}
		if filter.Before != nil {
			query = query.Where("appointments.scheduled_at < ?", *filter.Before)
		}
		if filter.TimeMin != "" {
			query = query.Where("appointments.scheduled_at::time >= ?", filter.TimeMin)
		}
		if filter.TimeMax != "" {
			query = query.Where("appointments.scheduled_at::time <= ?", filter.TimeMax)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where("professionals.name ILIKE ? OR professionals.occupation ILIKE ?", pattern, pattern)
		}
		if filter.OrderBy != "" {
			orderBy = filter.OrderBy
		}
	}

	err := query.Preload("Professional").Order(orderBy).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByProfessionalID(db *gorm.DB, professionalID uuid.UUID, dateMin, dateMax *time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Where("professional_id = ?", professionalID)

	if dateMin != nil {
		query = query.Where("scheduled_at::date >= ?", dateMin.Format("2006-01-02"))
	}
	if dateMax != nil {
		query = query.Where("scheduled_at::date <= ?", dateMax.Format("2006-01-02"))
	}

	err := query.Preload("Professional").Order("scheduled_at ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindConflict(db *gorm.DB, professionalID uuid.UUID, scheduledAt time.Time, excludeID uuid.UUID) (*entity.Appointment, error) {
	query := db.Where("professional_id = ? AND scheduled_at = ?", professionalID, scheduledAt)
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}

	var appointment entity.Appointment
	err := query.Preload("Professional").First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Professional").Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return affected.RowsAffected, affected.Error
}

// Summary recomputes the three counts from current store state on every call.
func (r *appointmentRepository) Summary(db *gorm.DB, now time.Time) (*entity.AppointmentSummary, error) {
	summary := &entity.AppointmentSummary{}

	if err := db.Model(&entity.Appointment{}).Count(&summary.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Appointment{}).Where("scheduled_at > ?", now).Count(&summary.Future).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Appointment{}).Where("scheduled_at < ?", now).Count(&summary.Past).Error; err != nil {
		return nil, err
	}

	return summary, nil
}
