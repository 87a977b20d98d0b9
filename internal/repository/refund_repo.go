package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petshop/internal/domain"
)

type RefundRepository struct {
	db *gorm.DB
}

func NewRefundRepository(db *gorm.DB) *RefundRepository {
	return &RefundRepository{db: db}
}

func (r *RefundRepository) Create(ctx context.Context, ref *domain.Refund) error {
	return r.db.WithContext(ctx).Create(ref).Error
}

func (r *RefundRepository) GetByAppointmentID(ctx context.Context, tenantID, appointmentID int64) (*domain.Refund, error) {
	var ref domain.Refund
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND appointment_id = ?", tenantID, appointmentID).
		First(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
