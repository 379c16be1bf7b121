package repository

import (
	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	List(db *gorm.DB, filter *entity.SpecialtyFilter) ([]entity.Specialty, int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.Specialty, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]entity.Specialty, error)
	FindByName(db *gorm.DB, name string) (*entity.Specialty, error)
	Create(db *gorm.DB, specialty *entity.Specialty) error
	Update(db *gorm.DB, specialty *entity.Specialty) error
	Delete(db *gorm.DB, id uint) (int64, error)
	DeletionPolicy() entity.DeletionPolicy
}
