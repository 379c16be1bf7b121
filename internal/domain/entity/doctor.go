package entity

import (
	"time"
)

// Doctor is a clinic physician identified by a unique CRM license number.
type Doctor struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CRM       string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"crm"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Active    *bool     `gorm:"not null;default:true;index" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialties []Specialty `gorm:"many2many:doctor_specialties;" json:"specialties,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorFilter is the typed filter for listing doctors.
type DoctorFilter struct {
	Name        string
	CRM         string
	SpecialtyID uint
	Active      *bool
	Page        int
	Limit       int
}
