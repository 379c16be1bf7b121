package repository

import (
	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ExamRepository interface {
	List(db *gorm.DB, filter *entity.ExamFilter) ([]entity.Exam, int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.Exam, error)
	Create(db *gorm.DB, exam *entity.Exam) error
	Update(db *gorm.DB, exam *entity.Exam) error
	UpdateStatus(db *gorm.DB, id uint, status entity.ExamStatus) (int64, error)
	DeletionPolicy() entity.DeletionPolicy
}
