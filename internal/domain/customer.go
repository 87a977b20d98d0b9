package domain

import "time"

// Customer belongs to one tenant. CPF is unique per tenant, not globally.
type Customer struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	TenantID  int64     `json:"tenant_id" gorm:"index;uniqueIndex:uniq_customer_cpf_tenant"`
	Name      string    `json:"name" gorm:"size:200"`
	CPF       string    `json:"cpf" gorm:"size:11;uniqueIndex:uniq_customer_cpf_tenant"`
	Email     string    `json:"email" gorm:"size:254"`
	Phone     string    `json:"phone" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`

	Tenant *Tenant `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}
