package usecase

import (
	"context"

	"github.com/clinicdev/clinic-api/internal/converter"
	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
	"github.com/clinicdev/clinic-api/internal/domain/repository"
	"github.com/clinicdev/clinic-api/internal/service"
	"github.com/clinicdev/clinic-api/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound      = apperror.NotFound("Appointment not found")
	ErrAppointmentConflict      = apperror.Conflict("Doctor already has an appointment at this time")
	ErrInvalidScheduledAt       = apperror.BadRequest("Invalid scheduled_at timestamp")
	ErrInvalidAppointmentStatus = apperror.BadRequest("Invalid appointment status")
)

type AppointmentUsecase interface {
	List(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, int64, error)
	Get(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id uint, status entity.AppointmentStatus) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uint) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, int64, error) {
	appointments, total, err := u.appointmentRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, 0, err
	}

	return converter.AppointmentsToResponses(appointments), total, nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	scheduledAt, err := parseTimestamp(req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidScheduledAt
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	conflict, err := u.appointmentRepo.FindConflict(tx, req.DoctorID, scheduledAt, 0)
	if err != nil {
		u.log.Warnf("Failed to check appointment conflict: %+v", err)
		return nil, err
	}
	if conflict != nil {
		return nil, ErrAppointmentConflict
	}

	appointment := &entity.Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		ScheduledAt: scheduledAt,
		Status:      entity.AppointmentStatusScheduled,
		Notes:       req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "doctor_id") {
			return nil, ErrAppointmentConflict
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	appointment.Doctor = *doctor

	actor := actorID(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionAppointmentCreate, "appointment", itoa(appointment.ID), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)

	if req.PatientID != 0 {
		patient, err := u.patientRepo.FindByID(tx, req.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
		appointment.PatientID = req.PatientID
		appointment.Patient = *patient
	}
	if req.DoctorID != 0 {
		doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		appointment.DoctorID = req.DoctorID
		appointment.Doctor = *doctor
	}
	if req.ScheduledAt != "" {
		scheduledAt, err := parseTimestamp(req.ScheduledAt)
		if err != nil {
			return nil, ErrInvalidScheduledAt
		}
		appointment.ScheduledAt = scheduledAt
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	// Rescheduling or changing the doctor re-checks the slot.
	if req.ScheduledAt != "" || req.DoctorID != 0 {
		conflict, err := u.appointmentRepo.FindConflict(tx, appointment.DoctorID, appointment.ScheduledAt, appointment.ID)
		if err != nil {
			u.log.Warnf("Failed to check appointment conflict: %+v", err)
			return nil, err
		}
		if conflict != nil {
			return nil, ErrAppointmentConflict
		}
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "doctor_id") {
			return nil, ErrAppointmentConflict
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	actor := actorID(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionAppointmentUpdate, "appointment", itoa(appointment.ID), oldValue, converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uint, status entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	if !entity.ValidAppointmentStatus(status) {
		return nil, ErrInvalidAppointmentStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)

	// Reactivating a canceled appointment re-checks the slot.
	if appointment.IsCanceled() && status != entity.AppointmentStatusCanceled {
		conflict, err := u.appointmentRepo.FindConflict(tx, appointment.DoctorID, appointment.ScheduledAt, appointment.ID)
		if err != nil {
			u.log.Warnf("Failed to check appointment conflict: %+v", err)
			return nil, err
		}
		if conflict != nil {
			return nil, ErrAppointmentConflict
		}
	}

	if _, err := u.appointmentRepo.UpdateStatus(tx, id, status); err != nil {
		if isDuplicateKeyError(err, "doctor_id") {
			return nil, ErrAppointmentConflict
		}
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	appointment.Status = status

	actor := actorID(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionAppointmentStatus, "appointment", itoa(appointment.ID), oldValue, converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if _, err := u.appointmentRepo.UpdateStatus(tx, id, entity.AppointmentStatusCanceled); err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}

	actor := actorID(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actor, entity.AuditActionAppointmentCancel, "appointment", itoa(id), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
