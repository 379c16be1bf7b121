package repository

import (
	"errors"

	"github.com/clinicdev/clinic-api/internal/domain/entity"
	domainRepo "github.com/clinicdev/clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type insuranceRepository struct{}

func NewInsuranceRepository() domainRepo.InsuranceRepository {
	return &insuranceRepository{}
}

func (r *insuranceRepository) List(db *gorm.DB, filter *entity.InsuranceFilter) ([]entity.Insurance, int64, error) {
	query := db.Model(&entity.Insurance{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var insurances []entity.Insurance
	if err := paginate(query, filter.Page, filter.Limit).Order("name ASC").Find(&insurances).Error; err != nil {
		return nil, 0, err
	}

	return insurances, total, nil
}

// FindByID returns the row regardless of the active flag, so deactivated
// plans stay retrievable by id.
func (r *insuranceRepository) FindByID(db *gorm.DB, id uint) (*entity.Insurance, error) {
	var insurance entity.Insurance
	err := db.Where("id = ?", id).First(&insurance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &insurance, nil
}

func (r *insuranceRepository) FindByName(db *gorm.DB, name string) (*entity.Insurance, error) {
	var insurance entity.Insurance
	err := db.Where("name = ?", name).First(&insurance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &insurance, nil
}

func (r *insuranceRepository) Create(db *gorm.DB, insurance *entity.Insurance) error {
	return db.Create(insurance).Error
}

func (r *insuranceRepository) Update(db *gorm.DB, insurance *entity.Insurance) error {
	return db.Save(insurance).Error
}

func (r *insuranceRepository) Deactivate(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Insurance{}).Where("id = ?", id).Update("active", false)
	return result.RowsAffected, result.Error
}

func (r *insuranceRepository) DeletionPolicy() entity.DeletionPolicy {
	return entity.SoftDeleteViaFlag
}
