package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petshop/internal/domain"
)

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// GetBySubdomain returns the active tenant with the given routing key, or
// nil when no such tenant exists.
func (r *TenantRepository) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	var t domain.Tenant
	err := r.db.WithContext(ctx).
		Where("subdomain = ? AND is_active = ?", subdomain, true).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TenantRepository) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Tenant{}).
		Where("subdomain = ?", subdomain).
		Count(&cnt).Error
	return cnt > 0, err
}
