package handler

import (
	"encoding/json"
	"net/http"

	"consulta-api/internal/delivery/dto"
	"consulta-api/internal/usecase"
	"consulta-api/pkg/response"
	"consulta-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	appointmentUsecase  usecase.AppointmentUsecase
	validator           *validator.CustomValidator
}

func NewProfessionalHandler(
	professionalUsecase usecase.ProfessionalUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		appointmentUsecase:  appointmentUsecase,
		validator:           validator,
	}
}

func (h *ProfessionalHandler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.CreateProfessional(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create professional")
		return
	}

	response.Success(w, http.StatusCreated, "Professional created successfully", professional)
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	professional, err := h.professionalUsecase.GetProfessional(r.Context(), id)
	if err != nil {
		if err == usecase.ErrProfessionalNotFound {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to get professional")
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

func (h *ProfessionalHandler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	professionals, err := h.professionalUsecase.ListProfessionals(r.Context(), r.URL.Query())
	if err != nil {
		response.InternalServerError(w, "Failed to list professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

// ListAppointments serves the appointments of one professional, honoring the
// date_min/date_max query bounds.
func (h *ProfessionalHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.ListByProfessional(r.Context(), id, r.URL.Query())
	if err != nil {
		if err == usecase.ErrProfessionalNotFound {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *ProfessionalHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.UpdateProfessional(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrProfessionalNotFound {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to update professional")
		return
	}

	response.Success(w, http.StatusOK, "Professional updated successfully", professional)
}

func (h *ProfessionalHandler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	if err := h.professionalUsecase.DeleteProfessional(r.Context(), id); err != nil {
		if err == usecase.ErrProfessionalNotFound {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to delete professional")
		return
	}

	response.NoContent(w)
}

// parseIDVar reads the {id} path variable, writing a 400 on malformed input.
func parseIDVar(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
