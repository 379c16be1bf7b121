package usecase

import (
	"context"

	"github.com/clinicdev/clinic-api/internal/converter"
	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
	"github.com/clinicdev/clinic-api/internal/domain/repository"
	"github.com/clinicdev/clinic-api/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInsuranceNotFound   = apperror.NotFound("Insurance not found")
	ErrInsuranceNameExists = apperror.Conflict("Insurance name already exists")
	ErrInvalidDiscount     = apperror.BadRequest("Discount percentage must be between 0 and 100")
)

type InsuranceUsecase interface {
	List(ctx context.Context, filter *entity.InsuranceFilter) ([]dto.InsuranceResponse, int64, error)
	Get(ctx context.Context, id uint) (*dto.InsuranceResponse, error)
	Create(ctx context.Context, req *dto.CreateInsuranceRequest) (*dto.InsuranceResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateInsuranceRequest) (*dto.InsuranceResponse, error)
	Delete(ctx context.Context, id uint) error
}

type insuranceUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	insuranceRepo repository.InsuranceRepository
}

func NewInsuranceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	insuranceRepo repository.InsuranceRepository,
) InsuranceUsecase {
	return &insuranceUsecase{
		db:            db,
		log:           log,
		insuranceRepo: insuranceRepo,
	}
}

func (u *insuranceUsecase) List(ctx context.Context, filter *entity.InsuranceFilter) ([]dto.InsuranceResponse, int64, error) {
	insurances, total, err := u.insuranceRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list insurances: %+v", err)
		return nil, 0, err
	}

	return converter.InsurancesToResponses(insurances), total, nil
}

func (u *insuranceUsecase) Get(ctx context.Context, id uint) (*dto.InsuranceResponse, error) {
	insurance, err := u.insuranceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find insurance: %+v", err)
		return nil, err
	}
	if insurance == nil {
		return nil, ErrInsuranceNotFound
	}

	return converter.InsuranceToResponse(insurance), nil
}

func (u *insuranceUsecase) Create(ctx context.Context, req *dto.CreateInsuranceRequest) (*dto.InsuranceResponse, error) {
	if !validDiscount(req.DiscountPercentage) {
		return nil, ErrInvalidDiscount
	}

	db := u.db.WithContext(ctx)

	existing, err := u.insuranceRepo.FindByName(db, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check insurance name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrInsuranceNameExists
	}

	insurance := &entity.Insurance{
		Name:               req.Name,
		PlanType:           req.PlanType,
		DiscountPercentage: req.DiscountPercentage,
		Phone:              req.Phone,
		Email:              req.Email,
	}

	if err := u.insuranceRepo.Create(db, insurance); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrInsuranceNameExists
		}
		u.log.Warnf("Failed to create insurance: %+v", err)
		return nil, err
	}

	return converter.InsuranceToResponse(insurance), nil
}

func (u *insuranceUsecase) Update(ctx context.Context, id uint, req *dto.UpdateInsuranceRequest) (*dto.InsuranceResponse, error) {
	db := u.db.WithContext(ctx)

	insurance, err := u.insuranceRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find insurance: %+v", err)
		return nil, err
	}
	if insurance == nil {
		return nil, ErrInsuranceNotFound
	}

	if req.Name != "" {
		insurance.Name = req.Name
	}
	if req.PlanType != "" {
		insurance.PlanType = req.PlanType
	}
	if req.DiscountPercentage != nil {
		if !validDiscount(*req.DiscountPercentage) {
			return nil, ErrInvalidDiscount
		}
		insurance.DiscountPercentage = *req.DiscountPercentage
	}
	if req.Phone != "" {
		insurance.Phone = req.Phone
	}
	if req.Email != "" {
		insurance.Email = req.Email
	}
	if req.Active != nil {
		insurance.Active = req.Active
	}

	if err := u.insuranceRepo.Update(db, insurance); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrInsuranceNameExists
		}
		u.log.Warnf("Failed to update insurance: %+v", err)
		return nil, err
	}

	return converter.InsuranceToResponse(insurance), nil
}

func (u *insuranceUsecase) Delete(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	affected, err := u.insuranceRepo.Deactivate(db, id)
	if err != nil {
		u.log.Warnf("Failed to deactivate insurance: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrInsuranceNotFound
	}

	return nil
}

func validDiscount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
}
