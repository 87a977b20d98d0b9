package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"petshop/internal/domain"
	"petshop/internal/pkg/clock"
)

// defaultHoldWindow is how long a tentative booking holds its slot before
// the sweeper may expire it. Computed from "now", not from the scheduled
// start, so a hold for an appointment starting in under 10 minutes can
// nominally outlive the appointment's own start.
const defaultHoldWindow = 10 * time.Minute

var (
	refundRateEarly = decimal.RequireFromString("0.90")
	refundRateLate  = decimal.RequireFromString("0.80")
)

type Service struct {
	appointments AppointmentRepository
	pets         PetRepository
	services     ServiceRepository
	payments     PaymentReader
	refunds      RefundRepository
	clock        clock.Clock
	holdWindow   time.Duration
}

type Option func(*Service)

// WithHoldWindow overrides the pre-booking hold window.
func WithHoldWindow(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.holdWindow = d
		}
	}
}

func NewService(
	appointments AppointmentRepository,
	pets PetRepository,
	services ServiceRepository,
	payments PaymentReader,
	refunds RefundRepository,
	clk clock.Clock,
	opts ...Option,
) *Service {
	s := &Service{
		appointments: appointments,
		pets:         pets,
		services:     services,
		payments:     payments,
		refunds:      refunds,
		clock:        clk,
		holdWindow:   defaultHoldWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PreBook creates a tentative appointment after the overlap scan passes.
// The scan is the fast path; the Postgres exclusion constraint is the
// authoritative guard, and a violation from it is mapped to the same
// conflict so callers cannot tell which layer caught it.
func (s *Service) PreBook(ctx context.Context, tenant *domain.Tenant, req PreBookRequest) (*domain.Appointment, error) {
	pet, err := s.pets.GetAnyByID(ctx, req.PetID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if pet.TenantID != tenant.ID {
		return nil, ErrPetWrongTenant
	}

	svc, err := s.services.GetAnyByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if svc.TenantID != tenant.ID {
		return nil, ErrServiceWrongTenant
	}

	end := domain.ComputeEndTime(req.ScheduledAt, svc.DurationMinutes)

	overlapping, err := s.appointments.CountOverlapping(ctx, tenant.ID, req.PetID, req.ServiceID, req.ScheduledAt, end, 0)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, ErrScheduleConflict
	}

	expiresAt := s.clock.Now().Add(s.holdWindow)
	a := &domain.Appointment{
		TenantID:    tenant.ID,
		PetID:       req.PetID,
		ServiceID:   req.ServiceID,
		ScheduledAt: req.ScheduledAt,
		EndTime:     end,
		Status:      domain.StatusPreBooked,
		ExpiresAt:   &expiresAt,
	}

	if err := s.appointments.Create(ctx, a); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "no_overlap" {
			return nil, ErrScheduleConflict
		}
		return nil, err
	}

	return a, nil
}

// UpdateStatus drives the appointment state machine. An illegal move fails
// with a TransitionError carrying the allowed targets and leaves the row
// unmodified. A same-status request is a no-op.
func (s *Service) UpdateStatus(ctx context.Context, tenant *domain.Tenant, id int64, target domain.AppointmentStatus) (*domain.Appointment, error) {
	if !domain.ValidAppointmentStatus(target) {
		return nil, ErrUnknownStatus
	}

	a, err := s.appointments.GetByID(ctx, tenant.ID, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}

	if a.Status == target {
		return a, nil
	}

	if !domain.CanTransition(a.Status, target) {
		return nil, &domain.TransitionError{
			From:    a.Status,
			To:      target,
			Allowed: domain.AllowedTransitions(a.Status),
		}
	}

	if err := s.appointments.UpdateStatus(ctx, tenant.ID, id, target); err != nil {
		return nil, err
	}
	a.Status = target
	return a, nil
}

// Cancel cancels a CONFIRMED appointment, computes the refund owed by the
// time-based policy and records a PENDING refund. Actually returning the
// money is out of scope here.
func (s *Service) Cancel(ctx context.Context, tenant *domain.Tenant, id int64, reason string) (decimal.Decimal, error) {
	a, err := s.appointments.GetByID(ctx, tenant.ID, id)
	if err != nil {
		return decimal.Zero, err
	}
	if a == nil {
		return decimal.Zero, ErrNotFound
	}
	if a.Status != domain.StatusConfirmed {
		return decimal.Zero, ErrNotCancellable
	}

	refund, err := s.calculateRefund(ctx, tenant, a)
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.appointments.UpdateStatus(ctx, tenant.ID, id, domain.StatusCancelled); err != nil {
		return decimal.Zero, err
	}

	if len(reason) > 255 {
		reason = reason[:255]
	}
	if err := s.refunds.Create(ctx, &domain.Refund{
		TenantID:      tenant.ID,
		AppointmentID: a.ID,
		Amount:        refund,
		Status:        domain.RefundPending,
		Reason:        reason,
	}); err != nil {
		return decimal.Zero, err
	}

	return refund, nil
}

// calculateRefund implements the cancellation policy: 90% of the paid
// amount when cancelling more than 24h before the appointment, 80% between
// 2h and 24h inclusive, nothing under 2h. Without an APPROVED payment there
// is nothing to refund.
func (s *Service) calculateRefund(ctx context.Context, tenant *domain.Tenant, a *domain.Appointment) (decimal.Decimal, error) {
	payment, err := s.payments.GetByAppointmentID(ctx, tenant.ID, a.ID)
	if err != nil {
		return decimal.Zero, err
	}
	if payment == nil || payment.Status != domain.PaymentApproved {
		return decimal.Zero, nil
	}

	hoursUntil := a.ScheduledAt.Sub(s.clock.Now()).Hours()

	var rate decimal.Decimal
	switch {
	case hoursUntil > 24:
		rate = refundRateEarly
	case hoursUntil >= 2:
		rate = refundRateLate
	default:
		return decimal.Zero, nil
	}

	return payment.Amount.Mul(rate).Round(2), nil
}

// ExpireDue sweeps stale tentative holds to EXPIRED and returns the count.
// Safe to run concurrently; the predicate is self-limiting.
func (s *Service) ExpireDue(ctx context.Context) (int64, error) {
	return s.appointments.ExpireDue(ctx, s.clock.Now())
}

func (s *Service) Get(ctx context.Context, tenant *domain.Tenant, id int64) (*domain.Appointment, error) {
	a, err := s.appointments.GetByID(ctx, tenant.ID, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, tenant *domain.Tenant) ([]domain.Appointment, error) {
	return s.appointments.ListByTenant(ctx, tenant.ID)
}
