package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petshop/internal/domain"
)

type PetRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

func (r *PetRepository) Create(ctx context.Context, p *domain.Pet) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PetRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Pet, error) {
	var p domain.Pet
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAnyByID ignores tenant scoping; validation-boundary use only.
func (r *PetRepository) GetAnyByID(ctx context.Context, id int64) (*domain.Pet, error) {
	var p domain.Pet
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PetRepository) ListByTenant(ctx context.Context, tenantID int64) ([]domain.Pet, error) {
	var out []domain.Pet
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *PetRepository) Update(ctx context.Context, p *domain.Pet) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PetRepository) Delete(ctx context.Context, tenantID, id int64) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&domain.Pet{}, id).Error
}
