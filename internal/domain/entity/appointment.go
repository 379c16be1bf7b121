package entity

import (
	"time"
)

// AppointmentStatus is the canonical appointment state set. Any valid status
// may replace any other; no transition graph is enforced.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCanceled  AppointmentStatus = "CANCELED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

// ValidAppointmentStatus reports whether the value is a recognized status.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed,
		AppointmentStatusCanceled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// Appointment links a patient and a doctor at an exact timestamp. At most one
// non-canceled appointment may exist per (doctor, timestamp); a partial unique
// index enforces this at the storage layer.
type Appointment struct {
	ID          uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   uint              `gorm:"not null;index" json:"patient_id"`
	DoctorID    uint              `gorm:"not null;index" json:"doctor_id"`
	ScheduledAt time.Time         `gorm:"not null;index" json:"scheduled_at"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsCanceled() bool {
	return a.Status == AppointmentStatusCanceled
}

// AppointmentFilter is the typed filter for listing appointments. From/To
// bound ScheduledAt inclusively; either bound may be open.
type AppointmentFilter struct {
	PatientID uint
	DoctorID  uint
	Status    AppointmentStatus
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}
