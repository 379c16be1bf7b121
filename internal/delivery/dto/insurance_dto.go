package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateInsuranceRequest struct {
	Name               string          `json:"name" validate:"required,min=2"`
	PlanType           string          `json:"plan_type" validate:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage" validate:"omitempty"`
	Phone              string          `json:"phone" validate:"omitempty"`
	Email              string          `json:"email" validate:"omitempty,email"`
}

type UpdateInsuranceRequest struct {
	Name               string           `json:"name" validate:"omitempty,min=2"`
	PlanType           string           `json:"plan_type" validate:"omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage" validate:"omitempty"`
	Phone              string           `json:"phone" validate:"omitempty"`
	Email              string           `json:"email" validate:"omitempty,email"`
	Active             *bool            `json:"active" validate:"omitempty"`
}

// Response DTOs

type InsuranceResponse struct {
	ID                 uint            `json:"id"`
	Name               string          `json:"name"`
	PlanType           string          `json:"plan_type"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	Phone              string          `json:"phone,omitempty"`
	Email              string          `json:"email,omitempty"`
	Active             *bool           `json:"active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
