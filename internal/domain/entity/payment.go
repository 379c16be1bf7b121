package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the canonical payment state set.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// ValidPaymentStatus reports whether the value is a recognized status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid,
		PaymentStatusCanceled, PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentMethod is the accepted payment method set.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentMethodPix        PaymentMethod = "PIX"
	PaymentMethodBankSlip   PaymentMethod = "BANK_SLIP"
	PaymentMethodInsurance  PaymentMethod = "INSURANCE"
)

// ValidPaymentMethod reports whether the value is a recognized method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodPix, PaymentMethodBankSlip, PaymentMethodInsurance:
		return true
	}
	return false
}

// Payment settles an appointment, optionally through an insurance plan.
type Payment struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID uint            `gorm:"not null;index" json:"appointment_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method        PaymentMethod   `gorm:"type:varchar(20);not null" json:"payment_method"`
	Status        PaymentStatus   `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	InsuranceID   *uint           `gorm:"index" json:"insurance_id,omitempty"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	Notes         string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Insurance   *Insurance  `gorm:"foreignKey:InsuranceID" json:"insurance,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// PaymentFilter is the typed filter for listing payments.
type PaymentFilter struct {
	AppointmentID uint
	Status        PaymentStatus
	Method        PaymentMethod
	InsuranceID   uint
	Page          int
	Limit         int
}
