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

type PaymentHandler struct {
	log       *logrus.Logger
	usecase   usecase.PaymentUsecase
	validator *validator.CustomValidator
}

func NewPaymentHandler(log *logrus.Logger, uc usecase.PaymentUsecase, v *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		log:       log,
		usecase:   uc,
		validator: v,
	}
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.From(r.URL.Query())
	filter := &entity.PaymentFilter{
		AppointmentID: params.Uint("appointment_id", 0),
		Status:        entity.PaymentStatus(params.String("status", "")),
		Method:        entity.PaymentMethod(params.String("payment_method", "")),
		InsuranceID:   params.Uint("insurance_id", 0),
		Page:          params.Page(),
		Limit:         params.Limit(),
	}

	payments, total, err := h.usecase.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err, "Failed to list payments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Payments retrieved successfully", payments,
		response.NewMeta(total, filter.Page, filter.Limit))
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment id", nil)
		return
	}

	payment, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to retrieve payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment retrieved successfully", payment)
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.usecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create payment")
		return
	}

	response.Success(w, http.StatusCreated, "Payment created successfully", payment)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment id", nil)
		return
	}

	var req dto.UpdatePaymentRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.usecase.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment updated successfully", payment)
}

func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment id", nil)
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		response.Error(w, http.StatusBadRequest, "Missing status parameter", nil)
		return
	}

	payment, err := h.usecase.UpdateStatus(r.Context(), id, entity.PaymentStatus(status))
	if err != nil {
		response.FromError(w, err, "Failed to update payment status")
		return
	}

	response.Success(w, http.StatusOK, "Payment status updated successfully", dto.PaymentStatusResponse{
		Message: "Status changed to " + status,
		Payment: payment,
	})
}

func (h *PaymentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment id", nil)
		return
	}

	if err := h.usecase.Cancel(r.Context(), id); err != nil {
		response.FromError(w, err, "Failed to cancel payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment canceled successfully", nil)
}
