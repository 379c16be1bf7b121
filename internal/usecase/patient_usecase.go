package usecase

import (
	"context"
	"time"

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
	ErrPatientNotFound    = apperror.NotFound("Patient not found")
	ErrPatientCPFExists   = apperror.Conflict("CPF already registered")
	ErrPatientEmailExists = apperror.Conflict("Email already registered")
	ErrInvalidBirthDate   = apperror.BadRequest("Invalid birth date, use YYYY-MM-DD")
)

type PatientUsecase interface {
	List(ctx context.Context, filter *entity.PatientFilter) ([]dto.PatientResponse, int64, error)
	Get(ctx context.Context, id uint) (*dto.PatientResponse, error)
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uint) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) List(ctx context.Context, filter *entity.PatientFilter) ([]dto.PatientResponse, int64, error) {
	patients, total, err := u.patientRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, 0, err
	}

	return converter.PatientsToResponses(patients), total, nil
}

func (u *patientUsecase) Get(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Best-effort early exits; the unique indexes remain the authority.
	existing, err := u.patientRepo.FindByCPF(tx, req.CPF)
	if err != nil {
		u.log.Warnf("Failed to check CPF: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPatientCPFExists
	}

	if req.Email != "" {
		existing, err = u.patientRepo.FindByEmail(tx, req.Email)
		if err != nil {
			u.log.Warnf("Failed to check email: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrPatientEmailExists
		}
	}

	patient := &entity.Patient{
		Name:      req.Name,
		CPF:       req.CPF,
		BirthDate: birthDate,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	if req.Email != "" {
		email := req.Email
		patient.Email = &email
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "cpf") {
			return nil, ErrPatientCPFExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrPatientEmailExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	actor := actorID(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionPatientCreate, "patient", itoa(patient.ID), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	// Apply only the fields present in the patch.
	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.Phone != "" {
		patient.Phone = req.Phone
	}
	if req.Email != "" {
		email := req.Email
		patient.Email = &email
	}
	if req.Address != "" {
		patient.Address = req.Address
	}
	if req.Active != nil {
		patient.Active = req.Active
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrPatientEmailExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	actor := actorID(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionPatientUpdate, "patient", itoa(patient.ID), oldValue, converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	affected, err := u.patientRepo.Deactivate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to deactivate patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	actor := actorID(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actor, entity.AuditActionPatientDeactivate, "patient", itoa(id), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
