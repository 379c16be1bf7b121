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

type MedicalRecordHandler struct {
	log       *logrus.Logger
	usecase   usecase.MedicalRecordUsecase
	validator *validator.CustomValidator
}

func NewMedicalRecordHandler(log *logrus.Logger, uc usecase.MedicalRecordUsecase, v *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		log:       log,
		usecase:   uc,
		validator: v,
	}
}

func (h *MedicalRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.From(r.URL.Query())
	filter := &entity.MedicalRecordFilter{
		PatientID: params.Uint("patient_id", 0),
		DoctorID:  params.Uint("doctor_id", 0),
		From:      params.OptionalTime("from", "2006-01-02"),
		To:        params.OptionalDateEnd("to", "2006-01-02"),
		Page:      params.Page(),
		Limit:     params.Limit(),
	}

	records, total, err := h.usecase.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err, "Failed to list medical records")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Medical records retrieved successfully", records,
		response.NewMeta(total, filter.Page, filter.Limit))
}

func (h *MedicalRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical record id", nil)
		return
	}

	record, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to retrieve medical record")
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", record)
}

func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalRecordRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.usecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create medical record")
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}
