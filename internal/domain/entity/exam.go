package entity

import (
	"time"
)

// ExamStatus is the canonical exam state set.
type ExamStatus string

const (
	ExamStatusRequested ExamStatus = "REQUESTED"
	ExamStatusScheduled ExamStatus = "SCHEDULED"
	ExamStatusCompleted ExamStatus = "COMPLETED"
	ExamStatusCanceled  ExamStatus = "CANCELED"
)

// ValidExamStatus reports whether the value is a recognized status.
func ValidExamStatus(s ExamStatus) bool {
	switch s {
	case ExamStatusRequested, ExamStatusScheduled,
		ExamStatusCompleted, ExamStatusCanceled:
		return true
	}
	return false
}

// Exam is linked to an appointment; patient and doctor are derived through
// it. The result text is set when the exam completes.
type Exam struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID uint       `gorm:"not null;index" json:"appointment_id"`
	Type          string     `gorm:"type:varchar(255);not null" json:"type"`
	Status        ExamStatus `gorm:"type:varchar(20);not null;default:'REQUESTED';index" json:"status"`
	Result        string     `gorm:"type:text" json:"result,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}

// ExamFilter is the typed filter for listing exams.
type ExamFilter struct {
	AppointmentID uint
	Status        ExamStatus
	Page          int
	Limit         int
}
