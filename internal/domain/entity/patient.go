package entity

import (
	"time"
)

// Patient is a clinic patient. Deactivation is the delete operation; rows are
// never removed.
type Patient struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CPF       string    `gorm:"type:char(11);uniqueIndex;not null" json:"cpf"`
	BirthDate time.Time `gorm:"type:date;not null" json:"birth_date"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email     *string   `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	Active    *bool     `gorm:"not null;default:true;index" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// PatientFilter is the typed filter for listing patients.
type PatientFilter struct {
	Name   string
	CPF    string
	Active *bool
	Page   int
	Limit  int
}
