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

type InsuranceHandler struct {
	log       *logrus.Logger
	usecase   usecase.InsuranceUsecase
	validator *validator.CustomValidator
}

func NewInsuranceHandler(log *logrus.Logger, uc usecase.InsuranceUsecase, v *validator.CustomValidator) *InsuranceHandler {
	return &InsuranceHandler{
		log:       log,
		usecase:   uc,
		validator: v,
	}
}

func (h *InsuranceHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.From(r.URL.Query())
	filter := &entity.InsuranceFilter{
		Name:   params.String("name", ""),
		Active: params.OptionalBool("active"),
		Page:   params.Page(),
		Limit:  params.Limit(),
	}

	insurances, total, err := h.usecase.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err, "Failed to list insurances")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Insurances retrieved successfully", insurances,
		response.NewMeta(total, filter.Page, filter.Limit))
}

func (h *InsuranceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid insurance id", nil)
		return
	}

	insurance, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to retrieve insurance")
		return
	}

	response.Success(w, http.StatusOK, "Insurance retrieved successfully", insurance)
}

func (h *InsuranceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInsuranceRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	insurance, err := h.usecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create insurance")
		return
	}

	response.Success(w, http.StatusCreated, "Insurance created successfully", insurance)
}

func (h *InsuranceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid insurance id", nil)
		return
	}

	var req dto.UpdateInsuranceRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	insurance, err := h.usecase.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update insurance")
		return
	}

	response.Success(w, http.StatusOK, "Insurance updated successfully", insurance)
}

func (h *InsuranceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid insurance id", nil)
		return
	}

	if err := h.usecase.Delete(r.Context(), id); err != nil {
		response.FromError(w, err, "Failed to deactivate insurance")
		return
	}

	response.Success(w, http.StatusOK, "Insurance deactivated successfully", nil)
}
