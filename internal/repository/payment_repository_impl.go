package repository

import (
	"errors"

	"github.com/clinicdev/clinic-api/internal/domain/entity"
	domainRepo "github.com/clinicdev/clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) List(db *gorm.DB, filter *entity.PaymentFilter) ([]entity.Payment, int64, error) {
	query := db.Model(&entity.Payment{})

	if filter.AppointmentID != 0 {
		query = query.Where("appointment_id = ?", filter.AppointmentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Method != "" {
		query = query.Where("method = ?", filter.Method)
	}
	if filter.InsuranceID != 0 {
		query = query.Where("insurance_id = ?", filter.InsuranceID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []entity.Payment
	err := paginate(query, filter.Page, filter.Limit).
		Preload("Appointment.Patient").
		Preload("Appointment.Doctor").
		Preload("Insurance").
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

func (r *paymentRepository) FindByID(db *gorm.DB, id uint) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Preload("Appointment.Patient").Preload("Appointment.Doctor").Preload("Insurance").
		Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) Update(db *gorm.DB, payment *entity.Payment) error {
	return db.Omit("Appointment", "Insurance").Save(payment).Error
}

func (r *paymentRepository) UpdateStatus(db *gorm.DB, id uint, status entity.PaymentStatus) (int64, error) {
	result := db.Model(&entity.Payment{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *paymentRepository) DeletionPolicy() entity.DeletionPolicy {
	return entity.SoftDeleteViaStatus
}
