package converter

import (
	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
)

func ExamToResponse(exam *entity.Exam) *dto.ExamResponse {
	if exam == nil {
		return nil
	}

	resp := &dto.ExamResponse{
		ID:            exam.ID,
		AppointmentID: exam.AppointmentID,
		Type:          exam.Type,
		Status:        string(exam.Status),
		Result:        exam.Result,
		CreatedAt:     exam.CreatedAt,
		UpdatedAt:     exam.UpdatedAt,
	}

	if exam.Appointment.ID != 0 {
		resp.Patient = PatientToSummary(&exam.Appointment.Patient)
		resp.Doctor = DoctorToSummary(&exam.Appointment.Doctor)
	}

	return resp
}

func ExamsToResponses(exams []entity.Exam) []dto.ExamResponse {
	responses := make([]dto.ExamResponse, len(exams))
	for i := range exams {
		responses[i] = *ExamToResponse(&exams[i])
	}
	return responses
}
