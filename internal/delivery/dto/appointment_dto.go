package dto

import (
	"time"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID   uint   `json:"patient_id" validate:"required,min=1"`
	DoctorID    uint   `json:"doctor_id" validate:"required,min=1"`
	ScheduledAt string `json:"scheduled_at" validate:"required"`
	Notes       string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	PatientID   uint    `json:"patient_id" validate:"omitempty,min=1"`
	DoctorID    uint    `json:"doctor_id" validate:"omitempty,min=1"`
	ScheduledAt string  `json:"scheduled_at" validate:"omitempty"`
	Notes       *string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uint           `json:"id"`
	Patient     PatientSummary `json:"patient"`
	Doctor      DoctorSummary  `json:"doctor"`
	ScheduledAt time.Time      `json:"scheduled_at"`
	Status      string         `json:"status"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type AppointmentStatusResponse struct {
	Message     string               `json:"message"`
	Appointment *AppointmentResponse `json:"appointment"`
}
