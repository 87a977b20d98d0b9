package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petshop/internal/domain"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAnyByID ignores tenant scoping. Used only to distinguish a missing
// customer from a cross-tenant reference at the validation boundary.
func (r *CustomerRepository) GetAnyByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) ListByTenant(ctx context.Context, tenantID int64) ([]domain.Customer, error) {
	var out []domain.Customer
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, tenantID, id int64) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&domain.Customer{}, id).Error
}

// ExistsByCPF reports whether another customer in the tenant already uses
// the CPF. excludeID skips the customer being updated.
func (r *CustomerRepository) ExistsByCPF(ctx context.Context, tenantID int64, cpf string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.Customer{}).
		Where("tenant_id = ? AND cpf = ?", tenantID, cpf)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var cnt int64
	err := q.Count(&cnt).Error
	return cnt > 0, err
}
