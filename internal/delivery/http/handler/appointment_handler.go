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

type AppointmentHandler struct {
	log       *logrus.Logger
	usecase   usecase.AppointmentUsecase
	validator *validator.CustomValidator
}

func NewAppointmentHandler(log *logrus.Logger, uc usecase.AppointmentUsecase, v *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		log:       log,
		usecase:   uc,
		validator: v,
	}
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.From(r.URL.Query())
	filter := &entity.AppointmentFilter{
		PatientID: params.Uint("patient_id", 0),
		DoctorID:  params.Uint("doctor_id", 0),
		Status:    entity.AppointmentStatus(params.String("status", "")),
		From:      params.OptionalTime("from", "2006-01-02"),
		To:        params.OptionalDateEnd("to", "2006-01-02"),
		Page:      params.Page(),
		Limit:     params.Limit(),
	}

	appointments, total, err := h.usecase.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err, "Failed to list appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments,
		response.NewMeta(total, filter.Page, filter.Limit))
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	appointment, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to retrieve appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.usecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment scheduled successfully", appointment)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.usecase.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		response.Error(w, http.StatusBadRequest, "Missing status parameter", nil)
		return
	}

	appointment, err := h.usecase.UpdateStatus(r.Context(), id, entity.AppointmentStatus(status))
	if err != nil {
		response.FromError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", dto.AppointmentStatusResponse{
		Message:     "Status changed to " + status,
		Appointment: appointment,
	})
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	if err := h.usecase.Cancel(r.Context(), id); err != nil {
		response.FromError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment canceled successfully", nil)
}
