package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"petshop/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Delete removes a half-created payment row after a failed gateway call so
// no orphan PENDING payment survives.
func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Payment{}, id).Error
}

func (r *PaymentRepository) SetExternalID(ctx context.Context, id int64, externalID string) error {
	return r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("id = ?", id).
		Update("external_id", externalID).Error
}

func (r *PaymentRepository) GetByAppointmentID(ctx context.Context, tenantID, appointmentID int64) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND appointment_id = ?", tenantID, appointmentID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByExternalID looks a payment up across all tenants. The webhook caller
// is anonymous and carries no tenant context, only the opaque gateway
// reference; this is one of the two privileged cross-tenant entry points.
func (r *PaymentRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ApproveIdempotent settles an approved payment exactly once. It locks the
// payment row, re-checks the processed flag under the lock (two concurrent
// deliveries can both pass the unlocked check), then marks the payment
// APPROVED and confirms the linked appointment. Returns false when another
// delivery already processed the payment.
func (r *PaymentRepository) ApproveIdempotent(ctx context.Context, externalID string) (bool, error) {
	return r.settleIdempotent(ctx, externalID, domain.PaymentApproved, true)
}

// RejectIdempotent settles a rejected payment exactly once. The appointment
// is left untouched: it stays PRE_BOOKED and remains eligible for expiration
// or a retried checkout.
func (r *PaymentRepository) RejectIdempotent(ctx context.Context, externalID string) (bool, error) {
	return r.settleIdempotent(ctx, externalID, domain.PaymentRejected, false)
}

func (r *PaymentRepository) settleIdempotent(ctx context.Context, externalID string, status domain.PaymentStatus, confirmAppointment bool) (bool, error) {
	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p domain.Payment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("external_id = ?", externalID).
			First(&p).Error; err != nil {
			return err
		}
		if p.WebhookProcessed {
			return nil
		}

		if err := tx.Model(&domain.Payment{}).
			Where("id = ?", p.ID).
			Updates(map[string]interface{}{
				"status":            string(status),
				"webhook_processed": true,
			}).Error; err != nil {
			return err
		}

		if confirmAppointment {
			// The status guard mirrors the state machine: only
			// PRE_BOOKED -> CONFIRMED is a legal move here.
			if err := tx.Model(&domain.Appointment{}).
				Where("id = ? AND status = ?", p.AppointmentID, string(domain.StatusPreBooked)).
				Update("status", string(domain.StatusConfirmed)).Error; err != nil {
				return err
			}
		}

		changed = true
		return nil
	})
	return changed, err
}
