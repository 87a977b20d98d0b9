package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"petshop/internal/domain"
	"petshop/internal/pkg/mercadopago"
)

// AppointmentReader is the tenant-scoped read the checkout precondition
// needs; the returned appointment carries its service for pricing.
type AppointmentReader interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Appointment, error)
}

// PaymentRepository persists payments. GetByExternalID and the two
// *Idempotent settlements are privileged cross-tenant operations reserved
// for the webhook reconciler: the gateway caller carries no tenant context.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id int64) error
	SetExternalID(ctx context.Context, id int64, externalID string) error
	GetByAppointmentID(ctx context.Context, tenantID, appointmentID int64) (*domain.Payment, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.Payment, error)
	ApproveIdempotent(ctx context.Context, externalID string) (bool, error)
	RejectIdempotent(ctx context.Context, externalID string) (bool, error)
}

// Gateway is the external payment collaborator: create a checkout session,
// read back a payment's authoritative status.
type Gateway interface {
	CreatePreference(ctx context.Context, amount decimal.Decimal, description string) (*mercadopago.Preference, error)
	GetPayment(ctx context.Context, externalID string) (*mercadopago.Payment, error)
}
