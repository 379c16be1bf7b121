package dto

import (
	"time"
)

// Request DTOs

type CreateMedicalRecordRequest struct {
	PatientID        uint   `json:"patient_id" validate:"required,min=1"`
	DoctorID         uint   `json:"doctor_id" validate:"required,min=1"`
	Description      string `json:"description" validate:"required"`
	ConsultationDate string `json:"consultation_date" validate:"required"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID               uint           `json:"id"`
	Patient          PatientSummary `json:"patient"`
	Doctor           DoctorSummary  `json:"doctor"`
	Description      string         `json:"description"`
	ConsultationDate time.Time      `json:"consultation_date"`
	CreatedAt        time.Time      `json:"created_at"`
}
