package dto

import (
	"time"
)

// Request DTOs

type CreatePatientRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	CPF       string `json:"cpf" validate:"required,cpf"`
	BirthDate string `json:"birth_date" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Address   string `json:"address" validate:"omitempty"`
}

// UpdatePatientRequest is a partial patch: absent fields keep their current
// value. CPF and birth date are immutable once registered.
type UpdatePatientRequest struct {
	Name    string `json:"name" validate:"omitempty,min=2"`
	Phone   string `json:"phone" validate:"omitempty"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty"`
	Active  *bool  `json:"active" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	BirthDate string    `json:"birth_date"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Active    *bool     `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
