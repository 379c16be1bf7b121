package usecase

import (
	"context"

	"github.com/clinicdev/clinic-api/internal/converter"
	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
	"github.com/clinicdev/clinic-api/internal/domain/repository"
	"github.com/clinicdev/clinic-api/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicalRecordNotFound   = apperror.NotFound("Medical record not found")
	ErrInvalidConsultationDate = apperror.BadRequest("Invalid consultation date timestamp")
)

// MedicalRecordUsecase is append-only; records are never updated or deleted.
type MedicalRecordUsecase interface {
	List(ctx context.Context, filter *entity.MedicalRecordFilter) ([]dto.MedicalRecordResponse, int64, error)
	Get(ctx context.Context, id uint) (*dto.MedicalRecordResponse, error)
	Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
}

type medicalRecordUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	recordRepo  repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:          db,
		log:         log,
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

func (u *medicalRecordUsecase) List(ctx context.Context, filter *entity.MedicalRecordFilter) ([]dto.MedicalRecordResponse, int64, error) {
	records, total, err := u.recordRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, 0, err
	}

	return converter.MedicalRecordsToResponses(records), total, nil
}

func (u *medicalRecordUsecase) Get(ctx context.Context, id uint) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	consultationDate, err := parseTimestamp(req.ConsultationDate)
	if err != nil {
		return nil, ErrInvalidConsultationDate
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

	record := &entity.MedicalRecord{
		PatientID:        req.PatientID,
		DoctorID:         req.DoctorID,
		Description:      req.Description,
		ConsultationDate: consultationDate,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	record.Patient = *patient
	record.Doctor = *doctor
	return converter.MedicalRecordToResponse(record), nil
}
