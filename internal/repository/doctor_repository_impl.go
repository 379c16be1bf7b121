package repository

import (
	"errors"

	"github.com/clinicdev/clinic-api/internal/domain/entity"
	domainRepo "github.com/clinicdev/clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) List(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error) {
	query := db.Model(&entity.Doctor{})

	if filter.Name != "" {
		query = query.Where("doctors.name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.CRM != "" {
		query = query.Where("doctors.crm = ?", filter.CRM)
	}
	if filter.Active != nil {
		query = query.Where("doctors.active = ?", *filter.Active)
	}
	if filter.SpecialtyID != 0 {
		query = query.
			Joins("JOIN doctor_specialties ON doctor_specialties.doctor_id = doctors.id").
			Where("doctor_specialties.specialty_id = ?", filter.SpecialtyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var doctors []entity.Doctor
	err := paginate(query, filter.Page, filter.Limit).
		Preload("Specialties").
		Order("doctors.name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}

	return doctors, total, nil
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Specialties").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByCRM(db *gorm.DB, crm string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("crm = ?", crm).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByEmail(db *gorm.DB, email string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("email = ?", email).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Specialties").Save(doctor).Error
}

// ReplaceSpecialties swaps the doctor's specialty set in one association
// write. Runs inside the caller's transaction together with the doctor row.
func (r *doctorRepository) ReplaceSpecialties(db *gorm.DB, doctor *entity.Doctor, specialties []entity.Specialty) error {
	return db.Model(doctor).Association("Specialties").Replace(specialties)
}

func (r *doctorRepository) Deactivate(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Doctor{}).Where("id = ?", id).Update("active", false)
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) DeletionPolicy() entity.DeletionPolicy {
	return entity.SoftDeleteViaFlag
}
