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
	ErrSecretaryNotFound  = apperror.NotFound("Secretary not found")
	ErrSecretaryCPFExists = apperror.Conflict("CPF already registered")
)

type SecretaryUsecase interface {
	List(ctx context.Context, filter *entity.SecretaryFilter) ([]dto.SecretaryResponse, int64, error)
	Get(ctx context.Context, id uint) (*dto.SecretaryResponse, error)
	Create(ctx context.Context, req *dto.CreateSecretaryRequest) (*dto.SecretaryResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateSecretaryRequest) (*dto.SecretaryResponse, error)
	Delete(ctx context.Context, id uint) error
}

type secretaryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	secretaryRepo repository.SecretaryRepository
	doctorRepo    repository.DoctorRepository
}

func NewSecretaryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	secretaryRepo repository.SecretaryRepository,
	doctorRepo repository.DoctorRepository,
) SecretaryUsecase {
	return &secretaryUsecase{
		db:            db,
		log:           log,
		secretaryRepo: secretaryRepo,
		doctorRepo:    doctorRepo,
	}
}

func (u *secretaryUsecase) List(ctx context.Context, filter *entity.SecretaryFilter) ([]dto.SecretaryResponse, int64, error) {
	secretaries, total, err := u.secretaryRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list secretaries: %+v", err)
		return nil, 0, err
	}

	return converter.SecretariesToResponses(secretaries), total, nil
}

func (u *secretaryUsecase) Get(ctx context.Context, id uint) (*dto.SecretaryResponse, error) {
	secretary, err := u.secretaryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find secretary: %+v", err)
		return nil, err
	}
	if secretary == nil {
		return nil, ErrSecretaryNotFound
	}

	return converter.SecretaryToResponse(secretary), nil
}

func (u *secretaryUsecase) Create(ctx context.Context, req *dto.CreateSecretaryRequest) (*dto.SecretaryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.secretaryRepo.FindByCPF(tx, req.CPF)
	if err != nil {
		u.log.Warnf("Failed to check CPF: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSecretaryCPFExists
	}

	if err := u.ensureDoctorExists(tx, req.DoctorID); err != nil {
		return nil, err
	}

	secretary := &entity.Secretary{
		Name:       req.Name,
		Department: req.Department,
		Phone:      req.Phone,
		CPF:        req.CPF,
		DoctorID:   req.DoctorID,
	}

	if err := u.secretaryRepo.Create(tx, secretary); err != nil {
		if isDuplicateKeyError(err, "cpf") {
			return nil, ErrSecretaryCPFExists
		}
		u.log.Warnf("Failed to create secretary: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, secretary.ID)
}

func (u *secretaryUsecase) Update(ctx context.Context, id uint, req *dto.UpdateSecretaryRequest) (*dto.SecretaryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	secretary, err := u.secretaryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find secretary: %+v", err)
		return nil, err
	}
	if secretary == nil {
		return nil, ErrSecretaryNotFound
	}

	if req.Name != "" {
		secretary.Name = req.Name
	}
	if req.Department != "" {
		secretary.Department = req.Department
	}
	if req.Phone != "" {
		secretary.Phone = req.Phone
	}
	if req.DoctorID != nil {
		if err := u.ensureDoctorExists(tx, req.DoctorID); err != nil {
			return nil, err
		}
		secretary.DoctorID = req.DoctorID
	}
	if req.Active != nil {
		secretary.Active = req.Active
	}

	if err := u.secretaryRepo.Update(tx, secretary); err != nil {
		u.log.Warnf("Failed to update secretary: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, secretary.ID)
}

func (u *secretaryUsecase) Delete(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	affected, err := u.secretaryRepo.Deactivate(db, id)
	if err != nil {
		u.log.Warnf("Failed to deactivate secretary: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSecretaryNotFound
	}

	return nil
}

func (u *secretaryUsecase) ensureDoctorExists(tx *gorm.DB, doctorID *uint) error {
	if doctorID == nil {
		return nil
	}

	doctor, err := u.doctorRepo.FindByID(tx, *doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	return nil
}
