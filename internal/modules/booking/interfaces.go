package booking

import (
	"context"
	"time"

	"petshop/internal/domain"
)

// AppointmentRepository is the storage surface of the scheduling engine.
// ExpireDue is the only cross-tenant operation; everything else takes the
// acting tenant explicitly.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Appointment, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]domain.Appointment, error)
	CountOverlapping(ctx context.Context, tenantID, petID, serviceID int64, start, end time.Time, excludeID int64) (int64, error)
	UpdateStatus(ctx context.Context, tenantID, id int64, status domain.AppointmentStatus) error
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

// PetRepository and ServiceRepository expose unscoped lookups so the
// validation boundary can tell "does not exist" apart from "belongs to
// another tenant".
type PetRepository interface {
	GetAnyByID(ctx context.Context, id int64) (*domain.Pet, error)
}

type ServiceRepository interface {
	GetAnyByID(ctx context.Context, id int64) (*domain.Service, error)
}

// PaymentReader feeds the refund policy the payment linked to an
// appointment, if any.
type PaymentReader interface {
	GetByAppointmentID(ctx context.Context, tenantID, appointmentID int64) (*domain.Payment, error)
}

type RefundRepository interface {
	Create(ctx context.Context, r *domain.Refund) error
}
