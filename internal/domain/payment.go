package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentApproved PaymentStatus = "APPROVED"
	PaymentRejected PaymentStatus = "REJECTED"
)

// Payment is one-to-one with an appointment (unique index on AppointmentID).
// ExternalID is the gateway's reference and is the only key the webhook
// carries, so it is unique when present. WebhookProcessed is the idempotency
// flag: once set, further deliveries for the same payment are no-ops.
type Payment struct {
	ID               int64           `json:"id" gorm:"primaryKey"`
	TenantID         int64           `json:"tenant_id" gorm:"index"`
	AppointmentID    int64           `json:"appointment_id" gorm:"uniqueIndex"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	Status           PaymentStatus   `json:"status" gorm:"size:20"`
	ExternalID       *string         `json:"payment_id_external,omitempty" gorm:"size:100;uniqueIndex"`
	WebhookProcessed bool            `json:"webhook_processed" gorm:"default:false"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Appointment *Appointment `json:"-" gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE"`
}
