package dto

import (
	"time"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	CRM          string `json:"crm" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	SpecialtyIDs []uint `json:"specialty_ids" validate:"omitempty,dive,min=1"`
}

type UpdateDoctorRequest struct {
	Name         string  `json:"name" validate:"omitempty,min=2"`
	CRM          string  `json:"crm" validate:"omitempty"`
	Phone        string  `json:"phone" validate:"omitempty"`
	Email        string  `json:"email" validate:"omitempty,email"`
	Active       *bool   `json:"active" validate:"omitempty"`
	SpecialtyIDs *[]uint `json:"specialty_ids" validate:"omitempty,dive,min=1"`
}

// Response DTOs

type DoctorResponse struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	CRM         string              `json:"crm"`
	Phone       string              `json:"phone"`
	Email       string              `json:"email"`
	Active      *bool               `json:"active"`
	Specialties []SpecialtyResponse `json:"specialties"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
