package repository

import (
	"errors"

	"github.com/clinicdev/clinic-api/internal/domain/entity"
	domainRepo "github.com/clinicdev/clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type secretaryRepository struct{}

func NewSecretaryRepository() domainRepo.SecretaryRepository {
	return &secretaryRepository{}
}

func (r *secretaryRepository) List(db *gorm.DB, filter *entity.SecretaryFilter) ([]entity.Secretary, int64, error) {
	query := db.Model(&entity.Secretary{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Department != "" {
		query = query.Where("department ILIKE ?", "%"+filter.Department+"%")
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var secretaries []entity.Secretary
	err := paginate(query, filter.Page, filter.Limit).
		Preload("Doctor").
		Order("name ASC").
		Find(&secretaries).Error
	if err != nil {
		return nil, 0, err
	}

	return secretaries, total, nil
}

func (r *secretaryRepository) FindByID(db *gorm.DB, id uint) (*entity.Secretary, error) {
	var secretary entity.Secretary
	err := db.Preload("Doctor").Where("id = ?", id).First(&secretary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &secretary, nil
}

func (r *secretaryRepository) FindByCPF(db *gorm.DB, cpf string) (*entity.Secretary, error) {
	var secretary entity.Secretary
	err := db.Where("cpf = ?", cpf).First(&secretary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &secretary, nil
}

func (r *secretaryRepository) Create(db *gorm.DB, secretary *entity.Secretary) error {
	return db.Create(secretary).Error
}

func (r *secretaryRepository) Update(db *gorm.DB, secretary *entity.Secretary) error {
	return db.Omit("Doctor").Save(secretary).Error
}

func (r *secretaryRepository) Deactivate(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Secretary{}).Where("id = ?", id).Update("active", false)
	return result.RowsAffected, result.Error
}

func (r *secretaryRepository) DeletionPolicy() entity.DeletionPolicy {
	return entity.SoftDeleteViaFlag
}
