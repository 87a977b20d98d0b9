package domain

import "time"

// Tenant is the isolation boundary. Every other entity belongs to exactly
// one tenant and all request-scoped reads and writes are filtered by it.
type Tenant struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100"`
	Subdomain string    `json:"subdomain" gorm:"size:63;uniqueIndex"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}
