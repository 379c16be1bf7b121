package repository

import (
	"time"

	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	List(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	// FindConflict returns the non-canceled appointment for the doctor at the
	// exact timestamp, skipping excludeID when non-zero. Nil when the slot is
	// free.
	FindConflict(db *gorm.DB, doctorID uint, at time.Time, excludeID uint) (*entity.Appointment, error)
	Create(db *gorm.DB, appointment *entity.Appointment) error
	Update(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(db *gorm.DB, id uint, status entity.AppointmentStatus) (int64, error)
	DeletionPolicy() entity.DeletionPolicy
}
