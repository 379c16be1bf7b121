package repository

import (
	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

// PatientRepository owns all access to the patients table. Methods take the
// *gorm.DB handle so usecases can pass a transaction.
type PatientRepository interface {
	List(db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	FindByCPF(db *gorm.DB, cpf string) (*entity.Patient, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Patient, error)
	Create(db *gorm.DB, patient *entity.Patient) error
	Update(db *gorm.DB, patient *entity.Patient) error
	Deactivate(db *gorm.DB, id uint) (int64, error)
	DeletionPolicy() entity.DeletionPolicy
}
