package handler

import (
	"net/http"

	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
	"github.com/clinicdev/clinic-api/internal/usecase"
	"github.com/clinicdev/clinic-api/pkg/query"
	"github.com/clinicdev/clinic-api/pkg/response"
	"github.com/clinicdev/clinic-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

type DoctorHandler struct {
	log                *logrus.Logger
	usecase            usecase.DoctorUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewDoctorHandler(
	log *logrus.Logger,
	uc usecase.DoctorUsecase,
	appointmentUC usecase.AppointmentUsecase,
	v *validator.CustomValidator,
) *DoctorHandler {
	return &DoctorHandler{
		log:                log,
		usecase:            uc,
		appointmentUsecase: appointmentUC,
		validator:          v,
	}
}

func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.From(r.URL.Query())
	filter := &entity.DoctorFilter{
		Name:        params.String("name", ""),
		CRM:         params.String("crm", ""),
		SpecialtyID: params.Uint("specialty_id", 0),
		Active:      params.OptionalBool("active"),
		Page:        params.Page(),
		Limit:       params.Limit(),
	}

	doctors, total, err := h.usecase.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err, "Failed to list doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", doctors,
		response.NewMeta(total, filter.Page, filter.Limit))
}

func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	doctor, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to retrieve doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// ListAppointments serves a doctor's agenda, optionally bounded by date.
func (h *DoctorHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	if _, err := h.usecase.Get(r.Context(), id); err != nil {
		response.FromError(w, err, "Failed to retrieve doctor")
		return
	}

	params := query.From(r.URL.Query())
	filter := &entity.AppointmentFilter{
		DoctorID: id,
		Status:   entity.AppointmentStatus(params.String("status", "")),
		From:     params.OptionalTime("from", "2006-01-02"),
		To:       params.OptionalDateEnd("to", "2006-01-02"),
		Page:     params.Page(),
		Limit:    params.Limit(),
	}

	appointments, total, err := h.appointmentUsecase.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err, "Failed to list appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments,
		response.NewMeta(total, filter.Page, filter.Limit))
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.usecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	var req dto.UpdateDoctorRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.usecase.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	if err := h.usecase.Delete(r.Context(), id); err != nil {
		response.FromError(w, err, "Failed to deactivate doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor deactivated successfully", nil)
}
