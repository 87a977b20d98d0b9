package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a sellable offering. The scheduling engine derives appointment
// end times from DurationMinutes, so price >= 0 and duration > 0 are hard
// invariants enforced at the catalog boundary.
type Service struct {
	ID              int64           `json:"id" gorm:"primaryKey"`
	TenantID        int64           `json:"tenant_id" gorm:"index"`
	Name            string          `json:"name" gorm:"size:100"`
	Description     string          `json:"description" gorm:"type:text"`
	Price           decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	DurationMinutes int             `json:"duration_minutes"`
	IsActive        bool            `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Tenant *Tenant `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}
