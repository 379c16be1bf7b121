package converter

import (
	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
)

func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID: record.ID,
		Patient: dto.PatientSummary{
			ID:   record.PatientID,
			Name: record.Patient.Name,
		},
		Doctor: dto.DoctorSummary{
			ID:   record.DoctorID,
			Name: record.Doctor.Name,
		},
		Description:      record.Description,
		ConsultationDate: record.ConsultationDate,
		CreatedAt:        record.CreatedAt,
	}
}

func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}
