package repository

import (
	"errors"

	"github.com/clinicdev/clinic-api/internal/domain/entity"
	domainRepo "github.com/clinicdev/clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type examRepository struct{}

func NewExamRepository() domainRepo.ExamRepository {
	return &examRepository{}
}

func (r *examRepository) List(db *gorm.DB, filter *entity.ExamFilter) ([]entity.Exam, int64, error) {
	query := db.Model(&entity.Exam{})

	if filter.AppointmentID != 0 {
		query = query.Where("appointment_id = ?", filter.AppointmentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var exams []entity.Exam
	err := paginate(query, filter.Page, filter.Limit).
		Preload("Appointment.Patient").
		Preload("Appointment.Doctor").
		Order("created_at DESC").
		Find(&exams).Error
	if err != nil {
		return nil, 0, err
	}

	return exams, total, nil
}

func (r *examRepository) FindByID(db *gorm.DB, id uint) (*entity.Exam, error) {
	var exam entity.Exam
	err := db.Preload("Appointment.Patient").Preload("Appointment.Doctor").
		Where("id = ?", id).First(&exam).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) Create(db *gorm.DB, exam *entity.Exam) error {
	return db.Create(exam).Error
}

func (r *examRepository) Update(db *gorm.DB, exam *entity.Exam) error {
	return db.Omit("Appointment").Save(exam).Error
}

func (r *examRepository) UpdateStatus(db *gorm.DB, id uint, status entity.ExamStatus) (int64, error) {
	result := db.Model(&entity.Exam{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *examRepository) DeletionPolicy() entity.DeletionPolicy {
	return entity.SoftDeleteViaStatus
}
