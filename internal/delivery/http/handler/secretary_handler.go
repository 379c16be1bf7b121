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

type SecretaryHandler struct {
	log       *logrus.Logger
	usecase   usecase.SecretaryUsecase
	validator *validator.CustomValidator
}

func NewSecretaryHandler(log *logrus.Logger, uc usecase.SecretaryUsecase, v *validator.CustomValidator) *SecretaryHandler {
	return &SecretaryHandler{
		log:       log,
		usecase:   uc,
		validator: v,
	}
}

func (h *SecretaryHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.From(r.URL.Query())
	filter := &entity.SecretaryFilter{
		Name:       params.String("name", ""),
		Department: params.String("department", ""),
		Active:     params.OptionalBool("active"),
		Page:       params.Page(),
		Limit:      params.Limit(),
	}

	secretaries, total, err := h.usecase.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err, "Failed to list secretaries")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Secretaries retrieved successfully", secretaries,
		response.NewMeta(total, filter.Page, filter.Limit))
}

func (h *SecretaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid secretary id", nil)
		return
	}

	secretary, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to retrieve secretary")
		return
	}

	response.Success(w, http.StatusOK, "Secretary retrieved successfully", secretary)
}

func (h *SecretaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSecretaryRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	secretary, err := h.usecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create secretary")
		return
	}

	response.Success(w, http.StatusCreated, "Secretary created successfully", secretary)
}

func (h *SecretaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid secretary id", nil)
		return
	}

	var req dto.UpdateSecretaryRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	secretary, err := h.usecase.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update secretary")
		return
	}

	response.Success(w, http.StatusOK, "Secretary updated successfully", secretary)
}

func (h *SecretaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid secretary id", nil)
		return
	}

	if err := h.usecase.Delete(r.Context(), id); err != nil {
		response.FromError(w, err, "Failed to deactivate secretary")
		return
	}

	response.Success(w, http.StatusOK, "Secretary deactivated successfully", nil)
}
