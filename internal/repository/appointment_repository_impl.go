package repository

import (
	"errors"
	"time"

	"github.com/clinicdev/clinic-api/internal/domain/entity"
	domainRepo "github.com/clinicdev/clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) List(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	query := db.Model(&entity.Appointment{})

	if filter.PatientID != 0 {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.DoctorID != 0 {
		query = query.Where("doctor_id = ?", filter.DoctorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("scheduled_at >= ?", *filter.From)
	}
	if filter.To != nil {
		// To is an exclusive upper bound; callers extend an inclusive day
		// bound to the start of the next day.
		query = query.Where("scheduled_at < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appointments []entity.Appointment
	err := paginate(query, filter.Page, filter.Limit).
		Preload("Patient").
		Preload("Doctor").
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}

	return appointments, total, nil
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindConflict checks the exact-timestamp conflict key. The partial unique
// index on (doctor_id, scheduled_at) WHERE status <> 'CANCELED' remains the
// authority under concurrent writers; this pre-check is a best-effort early
// exit.
func (r *appointmentRepository) FindConflict(db *gorm.DB, doctorID uint, at time.Time, excludeID uint) (*entity.Appointment, error) {
	query := db.Where("doctor_id = ? AND scheduled_at = ? AND status <> ?",
		doctorID, at, entity.AppointmentStatusCanceled)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var appointment entity.Appointment
	err := query.First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Doctor").Save(appointment).Error
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uint, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DeletionPolicy() entity.DeletionPolicy {
	return entity.SoftDeleteViaStatus
}
