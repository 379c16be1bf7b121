package repository

import (
	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

// MedicalRecordRepository is append-only: no update or delete.
type MedicalRecordRepository interface {
	List(db *gorm.DB, filter *entity.MedicalRecordFilter) ([]entity.MedicalRecord, int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.MedicalRecord, error)
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	DeletionPolicy() entity.DeletionPolicy
}
