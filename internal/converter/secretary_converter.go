package converter

import (
	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
)

func SecretaryToResponse(secretary *entity.Secretary) *dto.SecretaryResponse {
	if secretary == nil {
		return nil
	}

	return &dto.SecretaryResponse{
		ID:         secretary.ID,
		Name:       secretary.Name,
		Department: secretary.Department,
		Phone:      secretary.Phone,
		CPF:        secretary.CPF,
		Doctor:     DoctorToSummary(secretary.Doctor),
		Active:     secretary.Active,
		CreatedAt:  secretary.CreatedAt,
		UpdatedAt:  secretary.UpdatedAt,
	}
}

func SecretariesToResponses(secretaries []entity.Secretary) []dto.SecretaryResponse {
	responses := make([]dto.SecretaryResponse, len(secretaries))
	for i := range secretaries {
		responses[i] = *SecretaryToResponse(&secretaries[i])
	}
	return responses
}
