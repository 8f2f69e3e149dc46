package usecase

import (
	"context"
	"errors"
	"net/url"
	"time"

	"consulta-api/internal/converter"
	"consulta-api/internal/delivery/dto"
	"consulta-api/internal/delivery/http/middleware"
	"consulta-api/internal/domain/entity"
	"consulta-api/internal/domain/repository"
	"consulta-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrProfessionalNotFound = errors.New("professional not found")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, query url.Values) (*dto.AppointmentListResponse, error)
	ListByProfessional(ctx context.Context, professionalID uuid.UUID, query url.Values) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context) (*dto.AppointmentSummaryResponse, error)
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		auditService:     auditService,
	}
}

// CreateAppointment validates futurity and slot conflicts before committing.
// The pre-check produces the friendly field-level error; the unique
// constraint on (professional_id, scheduled_at) is what actually closes the
// race between concurrent requests, so a unique violation from the insert is
// mapped to the same conflict error.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	professional, err := u.professionalRepo.FindByID(db, req.ProfessionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", req.ProfessionalID, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	now := time.Now()

	conflicting, err := u.appointmentRepo.FindConflict(db, req.ProfessionalID, req.ScheduledAt, uuid.Nil)
	if err != nil {
		u.log.Warnf("Failed conflict lookup for professional %s: %+v", req.ProfessionalID, err)
		return nil, err
	}

	if details := scheduleViolations(req.ScheduledAt, now, conflicting); details != nil {
		return nil, &ValidationError{Details: details}
	}

	appointment := &entity.Appointment{
		ProfessionalID: req.ProfessionalID,
		ScheduledAt:    req.ScheduledAt,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		if isDuplicateKeyError(err, "uniq_professional_scheduled_at") {
			return nil, &ValidationError{Details: conflictDetails(professional.Name, req.ScheduledAt)}
		}
		if isForeignKeyError(err, "professional") {
			return nil, ErrProfessionalNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	u.auditService.LogCreate(db, userIDPtr(userID), entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), appointment)

	appointment.Professional = *professional
	u.log.Infof("Appointment created: id=%s, professional=%s, at=%s", appointment.ID, professional.ID, appointment.ScheduledAt)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// ListAppointments never fails on bad filter input: malformed values are
// dropped during resolution and the query degrades gracefully.
func (u *appointmentUsecase) ListAppointments(ctx context.Context, query url.Values) (*dto.AppointmentListResponse, error) {
	filter := ResolveAppointmentFilter(query, time.Now())

	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListByProfessional(ctx context.Context, professionalID uuid.UUID, query url.Values) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	professional, err := u.professionalRepo.FindByID(db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	appointments, err := u.appointmentRepo.FindByProfessionalID(
		db,
		professionalID,
		parseDate(query.Get("date_min")),
		parseDate(query.Get("date_max")),
	)
	if err != nil {
		u.log.Warnf("Failed to list appointments for professional %s: %+v", professionalID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointment re-runs the futurity check on every call and excludes the
// record itself from the conflict search, so keeping the same slot is never a
// conflict.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	professional, err := u.professionalRepo.FindByID(db, req.ProfessionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", req.ProfessionalID, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	now := time.Now()

	conflicting, err := u.appointmentRepo.FindConflict(db, req.ProfessionalID, req.ScheduledAt, id)
	if err != nil {
		u.log.Warnf("Failed conflict lookup for professional %s: %+v", req.ProfessionalID, err)
		return nil, err
	}

	if details := scheduleViolations(req.ScheduledAt, now, conflicting); details != nil {
		return nil, &ValidationError{Details: details}
	}

	oldValue := *appointment
	appointment.ProfessionalID = req.ProfessionalID
	appointment.ScheduledAt = req.ScheduledAt

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		if isDuplicateKeyError(err, "uniq_professional_scheduled_at") {
			return nil, &ValidationError{Details: conflictDetails(professional.Name, req.ScheduledAt)}
		}
		if isForeignKeyError(err, "professional") {
			return nil, ErrProfessionalNotFound
		}
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	u.auditService.LogUpdate(db, userIDPtr(userID), entity.AuditActionAppointmentUpdate, "appointment", appointment.ID.String(), oldValue, appointment)

	appointment.Professional = *professional
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.Delete(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	u.auditService.LogDelete(db, userIDPtr(userID), entity.AuditActionAppointmentDelete, "appointment", id.String(), appointment)

	u.log.Infof("Appointment deleted: id=%s", id)
	return nil
}

// Summary recomputes all three counts against a single current instant.
func (u *appointmentUsecase) Summary(ctx context.Context) (*dto.AppointmentSummaryResponse, error) {
	summary, err := u.appointmentRepo.Summary(u.db.WithContext(ctx), time.Now())
	if err != nil {
		u.log.Warnf("Failed to compute appointment summary: %+v", err)
		return nil, err
	}

	return &dto.AppointmentSummaryResponse{
		TotalAppointments:  summary.Total,
		FutureAppointments: summary.Future,
		PastAppointments:   summary.Past,
	}, nil
}

func userIDPtr(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
