package repository

import (
	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type SecretaryRepository interface {
	List(db *gorm.DB, filter *entity.SecretaryFilter) ([]entity.Secretary, int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.Secretary, error)
	FindByCPF(db *gorm.DB, cpf string) (*entity.Secretary, error)
	Create(db *gorm.DB, secretary *entity.Secretary) error
	Update(db *gorm.DB, secretary *entity.Secretary) error
	Deactivate(db *gorm.DB, id uint) (int64, error)
	DeletionPolicy() entity.DeletionPolicy
}
