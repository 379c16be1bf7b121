package repository

import (
	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	List(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.Doctor, error)
	FindByCRM(db *gorm.DB, crm string) (*entity.Doctor, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Doctor, error)
	Create(db *gorm.DB, doctor *entity.Doctor) error
	Update(db *gorm.DB, doctor *entity.Doctor) error
	ReplaceSpecialties(db *gorm.DB, doctor *entity.Doctor, specialties []entity.Specialty) error
	Deactivate(db *gorm.DB, id uint) (int64, error)
	DeletionPolicy() entity.DeletionPolicy
}
