package repository

import (
	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	List(db *gorm.DB, filter *entity.PaymentFilter) ([]entity.Payment, int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.Payment, error)
	Create(db *gorm.DB, payment *entity.Payment) error
	Update(db *gorm.DB, payment *entity.Payment) error
	UpdateStatus(db *gorm.DB, id uint, status entity.PaymentStatus) (int64, error)
	DeletionPolicy() entity.DeletionPolicy
}
