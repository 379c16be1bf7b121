package repository

import (
	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type InsuranceRepository interface {
	List(db *gorm.DB, filter *entity.InsuranceFilter) ([]entity.Insurance, int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.Insurance, error)
	FindByName(db *gorm.DB, name string) (*entity.Insurance, error)
	Create(db *gorm.DB, insurance *entity.Insurance) error
	Update(db *gorm.DB, insurance *entity.Insurance) error
	Deactivate(db *gorm.DB, id uint) (int64, error)
	DeletionPolicy() entity.DeletionPolicy
}
