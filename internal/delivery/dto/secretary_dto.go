package dto

import (
	"time"
)

// Request DTOs

type CreateSecretaryRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Department string `json:"department" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	CPF        string `json:"cpf" validate:"required,cpf"`
	DoctorID   *uint  `json:"doctor_id" validate:"omitempty,min=1"`
}

type UpdateSecretaryRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2"`
	Department string `json:"department" validate:"omitempty"`
	Phone      string `json:"phone" validate:"omitempty"`
	DoctorID   *uint  `json:"doctor_id" validate:"omitempty,min=1"`
	Active     *bool  `json:"active" validate:"omitempty"`
}

// Response DTOs

type SecretaryResponse struct {
	ID         uint           `json:"id"`
	Name       string         `json:"name"`
	Department string         `json:"department"`
	Phone      string         `json:"phone"`
	CPF        string         `json:"cpf"`
	Doctor     *DoctorSummary `json:"doctor,omitempty"`
	Active     *bool          `json:"active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// DoctorSummary is the embedded {id, name} shape used wherever another
// resource references a doctor.
type DoctorSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PatientSummary is the embedded {id, name} shape for patient references.
type PatientSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
