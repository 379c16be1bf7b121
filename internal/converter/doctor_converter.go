package converter

import (
	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:          doctor.ID,
		Name:        doctor.Name,
		CRM:         doctor.CRM,
		Phone:       doctor.Phone,
		Email:       doctor.Email,
		Active:      doctor.Active,
		Specialties: SpecialtiesToResponses(doctor.Specialties),
		CreatedAt:   doctor.CreatedAt,
		UpdatedAt:   doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorToSummary converts a Doctor to the embedded {id, name} shape
func DoctorToSummary(doctor *entity.Doctor) *dto.DoctorSummary {
	if doctor == nil {
		return nil
	}
	return &dto.DoctorSummary{
		ID:   doctor.ID,
		Name: doctor.Name,
	}
}
