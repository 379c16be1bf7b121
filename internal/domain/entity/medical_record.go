package entity

import (
	"time"
)

// MedicalRecord is an append-only consultation note. Records are created and
// read, never updated or deleted.
type MedicalRecord struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID        uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID         uint      `gorm:"not null;index" json:"doctor_id"`
	Description      string    `gorm:"type:text;not null" json:"description"`
	ConsultationDate time.Time `gorm:"not null;index" json:"consultation_date"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// MedicalRecordFilter is the typed filter for listing medical records.
type MedicalRecordFilter struct {
	PatientID uint
	DoctorID  uint
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}
