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

type ExamHandler struct {
	log       *logrus.Logger
	usecase   usecase.ExamUsecase
	validator *validator.CustomValidator
}

func NewExamHandler(log *logrus.Logger, uc usecase.ExamUsecase, v *validator.CustomValidator) *ExamHandler {
	return &ExamHandler{
		log:       log,
		usecase:   uc,
		validator: v,
	}
}

func (h *ExamHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.From(r.URL.Query())
	filter := &entity.ExamFilter{
		AppointmentID: params.Uint("appointment_id", 0),
		Status:        entity.ExamStatus(params.String("status", "")),
		Page:          params.Page(),
		Limit:         params.Limit(),
	}

	exams, total, err := h.usecase.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err, "Failed to list exams")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Exams retrieved successfully", exams,
		response.NewMeta(total, filter.Page, filter.Limit))
}

func (h *ExamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid exam id", nil)
		return
	}

	exam, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to retrieve exam")
		return
	}

	response.Success(w, http.StatusOK, "Exam retrieved successfully", exam)
}

func (h *ExamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExamRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	exam, err := h.usecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create exam")
		return
	}

	response.Success(w, http.StatusCreated, "Exam requested successfully", exam)
}

func (h *ExamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid exam id", nil)
		return
	}

	var req dto.UpdateExamRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	exam, err := h.usecase.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update exam")
		return
	}

	response.Success(w, http.StatusOK, "Exam updated successfully", exam)
}

func (h *ExamHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid exam id", nil)
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		response.Error(w, http.StatusBadRequest, "Missing status parameter", nil)
		return
	}

	exam, err := h.usecase.UpdateStatus(r.Context(), id, entity.ExamStatus(status))
	if err != nil {
		response.FromError(w, err, "Failed to update exam status")
		return
	}

	response.Success(w, http.StatusOK, "Exam status updated successfully", dto.ExamStatusResponse{
		Message: "Status changed to " + status,
		Exam:    exam,
	})
}

func (h *ExamHandler) SetResult(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid exam id", nil)
		return
	}

	var req dto.SetExamResultRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	exam, err := h.usecase.SetResult(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to set exam result")
		return
	}

	response.Success(w, http.StatusOK, "Exam result recorded successfully", exam)
}

func (h *ExamHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid exam id", nil)
		return
	}

	if err := h.usecase.Cancel(r.Context(), id); err != nil {
		response.FromError(w, err, "Failed to cancel exam")
		return
	}

	response.Success(w, http.StatusOK, "Exam canceled successfully", nil)
}
