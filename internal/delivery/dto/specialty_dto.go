package dto

// Request DTOs

type CreateSpecialtyRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type UpdateSpecialtyRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

// Response DTOs

type SpecialtyResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
