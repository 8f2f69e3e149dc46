package usecase

import (
	"context"
	"net/url"
	"strings"

	"consulta-api/internal/converter"
	"consulta-api/internal/delivery/dto"
	"consulta-api/internal/delivery/http/middleware"
	"consulta-api/internal/domain/entity"
	"consulta-api/internal/domain/repository"
	"consulta-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

var titleCaser = cases.Title(language.Und)

type ProfessionalUsecase interface {
	CreateProfessional(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error)
	GetProfessional(ctx context.Context, id uuid.UUID) (*dto.ProfessionalResponse, error)
	ListProfessionals(ctx context.Context, query url.Values) (*dto.ProfessionalListResponse, error)
	UpdateProfessional(ctx context.Context, id uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
	DeleteProfessional(ctx context.Context, id uuid.UUID) error
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		auditService:     auditService,
	}
}

func (u *professionalUsecase) CreateProfessional(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	db := u.db.WithContext(ctx)

	professional := &entity.Professional{
		Name:       strings.TrimSpace(req.Name),
		Occupation: normalizeOccupation(req.Occupation),
		Address:    strings.TrimSpace(req.Address),
		Contact:    strings.TrimSpace(req.Contact),
	}

	if err := u.professionalRepo.Create(db, professional); err != nil {
		u.log.Warnf("Failed to create professional: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	u.auditService.LogCreate(db, userIDPtr(userID), entity.AuditActionProfessionalCreate, "professional", professional.ID.String(), professional)

	u.log.Infof("Professional created: id=%s, name=%s", professional.ID, professional.Name)
	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) GetProfessional(ctx context.Context, id uuid.UUID) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", id, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) ListProfessionals(ctx context.Context, query url.Values) (*dto.ProfessionalListResponse, error) {
	filter := &entity.ProfessionalFilter{
		Name:       strings.TrimSpace(query.Get("name")),
		Occupation: strings.TrimSpace(query.Get("occupation")),
		Address:    strings.TrimSpace(query.Get("address")),
		Search:     strings.TrimSpace(query.Get("search")),
	}

	professionals, err := u.professionalRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list professionals: %+v", err)
		return nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalsToResponses(professionals),
		Total:         len(professionals),
	}, nil
}

// UpdateProfessional applies a partial update, leaving empty fields untouched.
func (u *professionalUsecase) UpdateProfessional(ctx context.Context, id uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	db := u.db.WithContext(ctx)

	professional, err := u.professionalRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", id, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	oldValue := *professional
	if req.Name != "" {
		professional.Name = strings.TrimSpace(req.Name)
	}
	if req.Occupation != "" {
		professional.Occupation = normalizeOccupation(req.Occupation)
	}
	if req.Address != "" {
		professional.Address = strings.TrimSpace(req.Address)
	}
	if req.Contact != "" {
		professional.Contact = strings.TrimSpace(req.Contact)
	}

	if err := u.professionalRepo.Update(db, professional); err != nil {
		u.log.Warnf("Failed to update professional %s: %+v", id, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	u.auditService.LogUpdate(db, userIDPtr(userID), entity.AuditActionProfessionalUpdate, "professional", professional.ID.String(), oldValue, professional)

	return converter.ProfessionalToResponse(professional), nil
}

// DeleteProfessional removes the professional together with all of its
// appointments via the cascade foreign key.
func (u *professionalUsecase) DeleteProfessional(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	professional, err := u.professionalRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", id, err)
		return err
	}
	if professional == nil {
		return ErrProfessionalNotFound
	}

	affected, err := u.professionalRepo.Delete(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete professional %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrProfessionalNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	u.auditService.LogDelete(db, userIDPtr(userID), entity.AuditActionProfessionalDelete, "professional", id.String(), professional)

	u.log.Infof("Professional deleted: id=%s, name=%s", id, professional.Name)
	return nil
}

// normalizeOccupation trims and title-cases the occupation so stored values
// stay searchable regardless of input casing.
func normalizeOccupation(value string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(value)))
}
