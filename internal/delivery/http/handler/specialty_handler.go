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

type SpecialtyHandler struct {
	log       *logrus.Logger
	usecase   usecase.SpecialtyUsecase
	validator *validator.CustomValidator
}

func NewSpecialtyHandler(log *logrus.Logger, uc usecase.SpecialtyUsecase, v *validator.CustomValidator) *SpecialtyHandler {
	return &SpecialtyHandler{
		log:       log,
		usecase:   uc,
		validator: v,
	}
}

func (h *SpecialtyHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.From(r.URL.Query())
	filter := &entity.SpecialtyFilter{
		Name:  params.String("name", ""),
		Page:  params.Page(),
		Limit: params.Limit(),
	}

	specialties, total, err := h.usecase.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err, "Failed to list specialties")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Specialties retrieved successfully", specialties,
		response.NewMeta(total, filter.Page, filter.Limit))
}

func (h *SpecialtyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty id", nil)
		return
	}

	specialty, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to retrieve specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty retrieved successfully", specialty)
}

func (h *SpecialtyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSpecialtyRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialty, err := h.usecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create specialty")
		return
	}

	response.Success(w, http.StatusCreated, "Specialty created successfully", specialty)
}

func (h *SpecialtyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty id", nil)
		return
	}

	var req dto.UpdateSpecialtyRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialty, err := h.usecase.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty updated successfully", specialty)
}

func (h *SpecialtyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty id", nil)
		return
	}

	if err := h.usecase.Delete(r.Context(), id); err != nil {
		response.FromError(w, err, "Failed to delete specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty deleted successfully", nil)
}
