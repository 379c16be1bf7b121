package converter

import (
	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
// The embedded patient/doctor summaries come from the preloaded rows so the
// response shape stays stable regardless of join strategy.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID: appointment.ID,
		Patient: dto.PatientSummary{
			ID:   appointment.PatientID,
			Name: appointment.Patient.Name,
		},
		Doctor: dto.DoctorSummary{
			ID:   appointment.DoctorID,
			Name: appointment.Doctor.Name,
		},
		ScheduledAt: appointment.ScheduledAt,
		Status:      string(appointment.Status),
		Notes:       appointment.Notes,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
