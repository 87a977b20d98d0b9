package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RefundStatus string

const (
	RefundPending   RefundStatus = "PENDING"
	RefundProcessed RefundStatus = "PROCESSED"
	RefundFailed    RefundStatus = "FAILED"
)

// Refund records the policy-computed amount owed back on cancellation.
// Created once, at the moment an appointment transitions to CANCELLED.
// Actually moving the money is a separate concern.
type Refund struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	TenantID      int64           `json:"tenant_id" gorm:"index"`
	AppointmentID int64           `json:"appointment_id" gorm:"uniqueIndex"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	Status        RefundStatus    `json:"status" gorm:"size:20"`
	Reason        string          `json:"reason" gorm:"size:255"`
	CreatedAt     time.Time       `json:"created_at"`

	Appointment *Appointment `json:"-" gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE"`
}
