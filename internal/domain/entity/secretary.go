package entity

import (
	"time"
)

// Secretary is a clinic staff member, optionally assigned to one doctor.
type Secretary struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Department string    `gorm:"type:varchar(100);not null" json:"department"`
	Phone      string    `gorm:"type:varchar(20);not null" json:"phone"`
	CPF        string    `gorm:"type:char(11);uniqueIndex;not null" json:"cpf"`
	DoctorID   *uint     `gorm:"index" json:"doctor_id,omitempty"`
	Active     *bool     `gorm:"not null;default:true;index" json:"active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Secretary) TableName() string {
	return "secretaries"
}

// SecretaryFilter is the typed filter for listing secretaries.
type SecretaryFilter struct {
	Name       string
	Department string
	Active     *bool
	Page       int
	Limit      int
}
