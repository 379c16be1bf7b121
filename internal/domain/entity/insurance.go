package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Insurance is a health insurance plan. The active flag is the soft-delete
// marker: deactivated plans are excluded from active-filtered listings but
// remain retrievable by id.
type Insurance struct {
	ID                 uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	PlanType           string          `gorm:"type:varchar(100);not null" json:"plan_type"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"discount_percentage"`
	Phone              string          `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email              string          `gorm:"type:varchar(255)" json:"email,omitempty"`
	Active             *bool           `gorm:"not null;default:true;index" json:"active"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Insurance) TableName() string {
	return "insurances"
}

// InsuranceFilter is the typed filter for listing insurances.
type InsuranceFilter struct {
	Name   string
	Active *bool
	Page   int
	Limit  int
}
