package converter

import (
	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
)

func InsuranceToResponse(insurance *entity.Insurance) *dto.InsuranceResponse {
	if insurance == nil {
		return nil
	}

	return &dto.InsuranceResponse{
		ID:                 insurance.ID,
		Name:               insurance.Name,
		PlanType:           insurance.PlanType,
		DiscountPercentage: insurance.DiscountPercentage,
		Phone:              insurance.Phone,
		Email:              insurance.Email,
		Active:             insurance.Active,
		CreatedAt:          insurance.CreatedAt,
		UpdatedAt:          insurance.UpdatedAt,
	}
}

func InsurancesToResponses(insurances []entity.Insurance) []dto.InsuranceResponse {
	responses := make([]dto.InsuranceResponse, len(insurances))
	for i := range insurances {
		responses[i] = *InsuranceToResponse(&insurances[i])
	}
	return responses
}
