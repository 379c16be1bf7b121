package dto

import (
	"time"
)

// Request DTOs

type CreateExamRequest struct {
	AppointmentID uint   `json:"appointment_id" validate:"required,min=1"`
	Type          string `json:"type" validate:"required,min=2"`
}

type UpdateExamRequest struct {
	Type string `json:"type" validate:"omitempty,min=2"`
}

type SetExamResultRequest struct {
	Result string `json:"result" validate:"required"`
}

// Response DTOs

type ExamResponse struct {
	ID            uint            `json:"id"`
	AppointmentID uint            `json:"appointment_id"`
	Patient       *PatientSummary `json:"patient,omitempty"`
	Doctor        *DoctorSummary  `json:"doctor,omitempty"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Result        string          `json:"result,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ExamStatusResponse struct {
	Message string        `json:"message"`
	Exam    *ExamResponse `json:"exam"`
}
