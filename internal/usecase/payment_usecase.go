package usecase

import (
	"context"
	"time"

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
	ErrPaymentNotFound      = apperror.NotFound("Payment not found")
	ErrInvalidPaymentStatus = apperror.BadRequest("Invalid payment status")
	ErrInvalidPaymentMethod = apperror.BadRequest("Invalid payment method")
	ErrInvalidPaymentAmount = apperror.BadRequest("Amount must be greater than zero")
)

type PaymentUsecase interface {
	List(ctx context.Context, filter *entity.PaymentFilter) ([]dto.PaymentResponse, int64, error)
	Get(ctx context.Context, id uint) (*dto.PaymentResponse, error)
	Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	UpdateStatus(ctx context.Context, id uint, status entity.PaymentStatus) (*dto.PaymentResponse, error)
	Cancel(ctx context.Context, id uint) error
}

type paymentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	paymentRepo     repository.PaymentRepository
	appointmentRepo repository.AppointmentRepository
	insuranceRepo   repository.InsuranceRepository
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	appointmentRepo repository.AppointmentRepository,
	insuranceRepo repository.InsuranceRepository,
) PaymentUsecase {
	return &paymentUsecase{
		db:              db,
		log:             log,
		paymentRepo:     paymentRepo,
		appointmentRepo: appointmentRepo,
		insuranceRepo:   insuranceRepo,
	}
}

func (u *paymentUsecase) List(ctx context.Context, filter *entity.PaymentFilter) ([]dto.PaymentResponse, int64, error) {
	payments, total, err := u.paymentRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, 0, err
	}

	return converter.PaymentsToResponses(payments), total, nil
}

func (u *paymentUsecase) Get(ctx context.Context, id uint) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find payment: %+v", err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	method := entity.PaymentMethod(req.Method)
	if !entity.ValidPaymentMethod(method) {
		return nil, ErrInvalidPaymentMethod
	}
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidPaymentAmount
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	amount := req.Amount
	var insurance *entity.Insurance
	if req.InsuranceID != nil {
		insurance, err = u.findActiveInsurance(tx, *req.InsuranceID)
		if err != nil {
			return nil, err
		}
		amount = applyDiscount(amount, insurance.DiscountPercentage)
	}

	payment := &entity.Payment{
		AppointmentID: req.AppointmentID,
		Amount:        amount,
		Method:        method,
		Status:        entity.PaymentStatusPending,
		InsuranceID:   req.InsuranceID,
		Notes:         req.Notes,
	}

	if err := u.paymentRepo.Create(tx, payment); err != nil {
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	payment.Appointment = *appointment
	payment.Insurance = insurance
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) Update(ctx context.Context, id uint, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	payment, err := u.paymentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find payment: %+v", err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, ErrInvalidPaymentAmount
		}
		payment.Amount = *req.Amount
	}
	if req.Method != "" {
		method := entity.PaymentMethod(req.Method)
		if !entity.ValidPaymentMethod(method) {
			return nil, ErrInvalidPaymentMethod
		}
		payment.Method = method
	}
	if req.InsuranceID != nil {
		insurance, err := u.findActiveInsurance(tx, *req.InsuranceID)
		if err != nil {
			return nil, err
		}
		payment.InsuranceID = req.InsuranceID
		payment.Insurance = insurance
	}
	if req.Notes != nil {
		payment.Notes = *req.Notes
	}

	if err := u.paymentRepo.Update(tx, payment); err != nil {
		u.log.Warnf("Failed to update payment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) UpdateStatus(ctx context.Context, id uint, status entity.PaymentStatus) (*dto.PaymentResponse, error) {
	if !entity.ValidPaymentStatus(status) {
		return nil, ErrInvalidPaymentStatus
	}

	db := u.db.WithContext(ctx)

	payment, err := u.paymentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find payment: %+v", err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	payment.Status = status
	// PaymentDate marks the moment of settlement.
	if status == entity.PaymentStatusPaid && payment.PaymentDate == nil {
		now := time.Now()
		payment.PaymentDate = &now
	}

	if err := u.paymentRepo.Update(db, payment); err != nil {
		u.log.Warnf("Failed to update payment status: %+v", err)
		return nil, err
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) Cancel(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	affected, err := u.paymentRepo.UpdateStatus(db, id, entity.PaymentStatusCanceled)
	if err != nil {
		u.log.Warnf("Failed to cancel payment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

func (u *paymentUsecase) findActiveInsurance(tx *gorm.DB, id uint) (*entity.Insurance, error) {
	insurance, err := u.insuranceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find insurance: %+v", err)
		return nil, err
	}
	if insurance == nil {
		return nil, ErrInsuranceNotFound
	}
	if insurance.Active != nil && !*insurance.Active {
		return nil, apperror.BadRequest("Insurance is not active")
	}
	return insurance, nil
}

// applyDiscount reduces the gross amount by the plan percentage, rounded to
// cents.
func applyDiscount(amount, percentage decimal.Decimal) decimal.Decimal {
	if percentage.IsZero() {
		return amount
	}
	factor := decimal.NewFromInt(100).Sub(percentage).Div(decimal.NewFromInt(100))
	return amount.Mul(factor).Round(2)
}
