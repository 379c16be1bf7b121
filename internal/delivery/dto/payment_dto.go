package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePaymentRequest struct {
	AppointmentID uint            `json:"appointment_id" validate:"required,min=1"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Method        string          `json:"payment_method" validate:"required"`
	InsuranceID   *uint           `json:"insurance_id" validate:"omitempty,min=1"`
	Notes         string          `json:"notes" validate:"omitempty"`
}

type UpdatePaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty"`
	Method      string           `json:"payment_method" validate:"omitempty"`
	InsuranceID *uint            `json:"insurance_id" validate:"omitempty,min=1"`
	Notes       *string          `json:"notes" validate:"omitempty"`
}

// Response DTOs

type PaymentResponse struct {
	ID            uint             `json:"id"`
	AppointmentID uint             `json:"appointment_id"`
	Patient       *PatientSummary  `json:"patient,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	Method        string           `json:"payment_method"`
	Status        string           `json:"status"`
	Insurance     *InsuranceSummary `json:"insurance,omitempty"`
	PaymentDate   *time.Time       `json:"payment_date,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type InsuranceSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PaymentStatusResponse struct {
	Message string           `json:"message"`
	Payment *PaymentResponse `json:"payment"`
}
