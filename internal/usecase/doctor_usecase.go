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
	ErrDoctorNotFound     = apperror.NotFound("Doctor not found")
	ErrDoctorCRMExists    = apperror.Conflict("CRM already registered")
	ErrDoctorEmailExists  = apperror.Conflict("Email already registered")
	ErrUnknownSpecialties = apperror.NotFound("One or more specialties not found")
)

type DoctorUsecase interface {
	List(ctx context.Context, filter *entity.DoctorFilter) ([]dto.DoctorResponse, int64, error)
	Get(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uint) error
}

type doctorUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	doctorRepo    repository.DoctorRepository
	specialtyRepo repository.SpecialtyRepository
	auditService  service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	specialtyRepo repository.SpecialtyRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:            db,
		log:           log,
		doctorRepo:    doctorRepo,
		specialtyRepo: specialtyRepo,
		auditService:  auditService,
	}
}

func (u *doctorUsecase) List(ctx context.Context, filter *entity.DoctorFilter) ([]dto.DoctorResponse, int64, error) {
	doctors, total, err := u.doctorRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, 0, err
	}

	return converter.DoctorsToResponses(doctors), total, nil
}

func (u *doctorUsecase) Get(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.doctorRepo.FindByCRM(tx, req.CRM)
	if err != nil {
		u.log.Warnf("Failed to check CRM: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDoctorCRMExists
	}

	existing, err = u.doctorRepo.FindByEmail(tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDoctorEmailExists
	}

	specialties, err := u.resolveSpecialties(tx, req.SpecialtyIDs)
	if err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{
		Name:        req.Name,
		CRM:         req.CRM,
		Phone:       req.Phone,
		Email:       req.Email,
		Specialties: specialties,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "crm") {
			return nil, ErrDoctorCRMExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	actor := actorID(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionDoctorCreate, "doctor", itoa(doctor.ID), converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := converter.DoctorToResponse(doctor)

	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.CRM != "" {
		doctor.CRM = req.CRM
	}
	if req.Phone != "" {
		doctor.Phone = req.Phone
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.Active != nil {
		doctor.Active = req.Active
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "crm") {
			return nil, ErrDoctorCRMExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	// Nil means "leave as is"; an empty slice clears the assignments.
	if req.SpecialtyIDs != nil {
		specialties, err := u.resolveSpecialties(tx, *req.SpecialtyIDs)
		if err != nil {
			return nil, err
		}
		if err := u.doctorRepo.ReplaceSpecialties(tx, doctor, specialties); err != nil {
			u.log.Warnf("Failed to replace specialties: %+v", err)
			return nil, err
		}
		doctor.Specialties = specialties
	}

	actor := actorID(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionDoctorUpdate, "doctor", itoa(doctor.ID), oldValue, converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	affected, err := u.doctorRepo.Deactivate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to deactivate doctor: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	actor := actorID(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actor, entity.AuditActionDoctorDeactivate, "doctor", itoa(id), converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *doctorUsecase) resolveSpecialties(tx *gorm.DB, ids []uint) ([]entity.Specialty, error) {
	if len(ids) == 0 {
		return []entity.Specialty{}, nil
	}

	specialties, err := u.specialtyRepo.FindByIDs(tx, ids)
	if err != nil {
		u.log.Warnf("Failed to find specialties: %+v", err)
		return nil, err
	}
	if len(specialties) != len(dedupe(ids)) {
		return nil, ErrUnknownSpecialties
	}

	return specialties, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
