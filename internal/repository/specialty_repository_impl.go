package repository

import (
	"errors"

	"github.com/clinicdev/clinic-api/internal/domain/entity"
	domainRepo "github.com/clinicdev/clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type specialtyRepository struct{}

func NewSpecialtyRepository() domainRepo.SpecialtyRepository {
	return &specialtyRepository{}
}

func (r *specialtyRepository) List(db *gorm.DB, filter *entity.SpecialtyFilter) ([]entity.Specialty, int64, error) {
	query := db.Model(&entity.Specialty{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var specialties []entity.Specialty
	if err := paginate(query, filter.Page, filter.Limit).Order("name ASC").Find(&specialties).Error; err != nil {
		return nil, 0, err
	}

	return specialties, total, nil
}

func (r *specialtyRepository) FindByID(db *gorm.DB, id uint) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := db.Where("id = ?", id).First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) FindByIDs(db *gorm.DB, ids []uint) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	if err := db.Where("id IN ?", ids).Find(&specialties).Error; err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) FindByName(db *gorm.DB, name string) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := db.Where("name = ?", name).First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) Create(db *gorm.DB, specialty *entity.Specialty) error {
	return db.Create(specialty).Error
}

func (r *specialtyRepository) Update(db *gorm.DB, specialty *entity.Specialty) error {
	return db.Save(specialty).Error
}

// Delete removes the row. Specialties are a lookup table; the join rows
// cascade at the storage layer.
func (r *specialtyRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Specialty{})
	return result.RowsAffected, result.Error
}

func (r *specialtyRepository) DeletionPolicy() entity.DeletionPolicy {
	return entity.HardDelete
}
