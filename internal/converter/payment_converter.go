package converter

import (
	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
)

func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	resp := &dto.PaymentResponse{
		ID:            payment.ID,
		AppointmentID: payment.AppointmentID,
		Amount:        payment.Amount,
		Method:        string(payment.Method),
		Status:        string(payment.Status),
		PaymentDate:   payment.PaymentDate,
		Notes:         payment.Notes,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}

	if payment.Appointment.ID != 0 {
		resp.Patient = PatientToSummary(&payment.Appointment.Patient)
	}
	if payment.Insurance != nil {
		resp.Insurance = &dto.InsuranceSummary{
			ID:   payment.Insurance.ID,
			Name: payment.Insurance.Name,
		}
	}

	return resp
}

func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *PaymentToResponse(&payments[i])
	}
	return responses
}
