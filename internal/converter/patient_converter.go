package converter

import (
	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	email := ""
	if patient.Email != nil {
		email = *patient.Email
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		CPF:       patient.CPF,
		BirthDate: patient.BirthDate.Format("2006-01-02"),
		Phone:     patient.Phone,
		Email:     email,
		Address:   patient.Address,
		Active:    patient.Active,
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientToSummary converts a Patient to the embedded {id, name} shape
func PatientToSummary(patient *entity.Patient) *dto.PatientSummary {
	if patient == nil {
		return nil
	}
	return &dto.PatientSummary{
		ID:   patient.ID,
		Name: patient.Name,
	}
}
