package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"petshop/internal/domain"
)

// depositRate is the share of the service price collected at checkout.
var depositRate = decimal.RequireFromString("0.5")

type Service struct {
	appointments AppointmentReader
	payments     PaymentRepository
	gateway      Gateway
	loggerf      func(format string, args ...interface{})
}

func NewService(appointments AppointmentReader, payments PaymentRepository, gateway Gateway, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		appointments: appointments,
		payments:     payments,
		gateway:      gateway,
		loggerf:      loggerf,
	}
}

// Checkout starts payment collection for a PRE_BOOKED appointment: a payment
// row is created for half the service price, a gateway preference is opened
// and its redirect link returned. If the gateway call fails the payment row
// is removed so the caller can retry cleanly.
func (s *Service) Checkout(ctx context.Context, tenant *domain.Tenant, appointmentID int64) (string, error) {
	a, err := s.appointments.GetByID(ctx, tenant.ID, appointmentID)
	if err != nil {
		return "", err
	}
	if a == nil {
		return "", ErrAppointmentNotFound
	}
	if a.Status != domain.StatusPreBooked {
		return "", ErrInvalidStatus
	}
	if a.Service == nil {
		return "", fmt.Errorf("appointment %d has no service loaded", a.ID)
	}

	existing, err := s.payments.GetByAppointmentID(ctx, tenant.ID, a.ID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrCheckoutExists
	}

	amount := a.Service.Price.Mul(depositRate).Round(2)
	p := &domain.Payment{
		TenantID:      tenant.ID,
		AppointmentID: a.ID,
		Amount:        amount,
		Status:        domain.PaymentPending,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return "", err
	}

	pref, err := s.gateway.CreatePreference(ctx, amount, a.Service.Name)
	if err != nil {
		s.loggerf("level=error msg=gateway preference failed tenant_id=%d appointment_id=%d err=%v", tenant.ID, a.ID, err)
		if derr := s.payments.Delete(ctx, p.ID); derr != nil {
			s.loggerf("level=error msg=failed to roll back payment row payment_id=%d err=%v", p.ID, derr)
		}
		return "", ErrPaymentFailed
	}

	if err := s.payments.SetExternalID(ctx, p.ID, pref.ID); err != nil {
		// without the external id the row can never be settled by a
		// webhook and would block retries; remove it like the gateway
		// failure branch does
		s.loggerf("level=error msg=failed to store gateway reference payment_id=%d external_id=%s err=%v", p.ID, pref.ID, err)
		if derr := s.payments.Delete(ctx, p.ID); derr != nil {
			s.loggerf("level=error msg=failed to roll back payment row payment_id=%d err=%v", p.ID, derr)
		}
		return "", err
	}

	s.loggerf("level=info msg=checkout created tenant_id=%d appointment_id=%d payment_id=%d amount=%s", tenant.ID, a.ID, p.ID, amount.StringFixed(2))
	return pref.InitPoint, nil
}

// HandleWebhook reconciles a gateway notification against the stored
// payment. Deliveries arrive at-least-once and possibly concurrently; the
// settlement is guarded row-locked in the repository so exactly one delivery
// mutates state and the rest observe already_processed. Unknown gateway
// statuses leave the payment untouched and report pending so the gateway
// stops retrying.
func (s *Service) HandleWebhook(ctx context.Context, n WebhookNotification) (*WebhookResult, error) {
	if n.Type != "payment" {
		return &WebhookResult{Status: OutcomeIgnored}, nil
	}
	if n.Data.ID == "" {
		return nil, ErrMissingPaymentID
	}

	p, err := s.payments.GetByExternalID(ctx, n.Data.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}
	// cheap pre-check; the locked recheck inside settlement is authoritative
	if p.WebhookProcessed {
		return &WebhookResult{Status: OutcomeAlreadyProcessed}, nil
	}

	gp, err := s.gateway.GetPayment(ctx, n.Data.ID)
	if err != nil {
		s.loggerf("level=error msg=gateway payment lookup failed external_id=%s err=%v", n.Data.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	switch gp.Status {
	case "approved":
		changed, err := s.payments.ApproveIdempotent(ctx, n.Data.ID)
		if err != nil {
			return nil, err
		}
		if !changed {
			return &WebhookResult{Status: OutcomeAlreadyProcessed}, nil
		}
		s.loggerf("level=info msg=payment approved external_id=%s appointment_id=%d", n.Data.ID, p.AppointmentID)
		return &WebhookResult{Status: OutcomeProcessed, PaymentStatus: string(domain.PaymentApproved)}, nil

	case "rejected":
		changed, err := s.payments.RejectIdempotent(ctx, n.Data.ID)
		if err != nil {
			return nil, err
		}
		if !changed {
			return &WebhookResult{Status: OutcomeAlreadyProcessed}, nil
		}
		s.loggerf("level=info msg=payment rejected external_id=%s appointment_id=%d", n.Data.ID, p.AppointmentID)
		return &WebhookResult{Status: OutcomeProcessed, PaymentStatus: string(domain.PaymentRejected)}, nil

	default:
		return &WebhookResult{Status: OutcomePending, PaymentStatus: gp.Status}, nil
	}
}
