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
	ErrSpecialtyNotFound   = apperror.NotFound("Specialty not found")
	ErrSpecialtyNameExists = apperror.Conflict("Specialty name already exists")
	ErrSpecialtyInUse      = apperror.Conflict("Specialty is assigned to one or more doctors")
)

type SpecialtyUsecase interface {
	List(ctx context.Context, filter *entity.SpecialtyFilter) ([]dto.SpecialtyResponse, int64, error)
	Get(ctx context.Context, id uint) (*dto.SpecialtyResponse, error)
	Create(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	Delete(ctx context.Context, id uint) error
}

type specialtyUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
}

func NewSpecialtyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
) SpecialtyUsecase {
	return &specialtyUsecase{
		db:            db,
		log:           log,
		specialtyRepo: specialtyRepo,
	}
}

func (u *specialtyUsecase) List(ctx context.Context, filter *entity.SpecialtyFilter) ([]dto.SpecialtyResponse, int64, error) {
	specialties, total, err := u.specialtyRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list specialties: %+v", err)
		return nil, 0, err
	}

	return converter.SpecialtiesToResponses(specialties), total, nil
}

func (u *specialtyUsecase) Get(ctx context.Context, id uint) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) Create(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	db := u.db.WithContext(ctx)

	existing, err := u.specialtyRepo.FindByName(db, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check specialty name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSpecialtyNameExists
	}

	specialty := &entity.Specialty{Name: req.Name}

	if err := u.specialtyRepo.Create(db, specialty); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyNameExists
		}
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) Update(ctx context.Context, id uint, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	db := u.db.WithContext(ctx)

	specialty, err := u.specialtyRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	specialty.Name = req.Name

	if err := u.specialtyRepo.Update(db, specialty); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyNameExists
		}
		u.log.Warnf("Failed to update specialty: %+v", err)
		return nil, err
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) Delete(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	affected, err := u.specialtyRepo.Delete(db, id)
	if err != nil {
		if isForeignKeyError(err, "doctor_specialties") {
			return ErrSpecialtyInUse
		}
		u.log.Warnf("Failed to delete specialty: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSpecialtyNotFound
	}

	return nil
}
