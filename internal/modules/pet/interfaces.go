package pet

import (
	"context"

	"petshop/internal/domain"
)

type PetRepository interface {
	Create(ctx context.Context, p *domain.Pet) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Pet, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]domain.Pet, error)
	Update(ctx context.Context, p *domain.Pet) error
	Delete(ctx context.Context, tenantID, id int64) error
}

// CustomerReader resolves the owner unscoped so a cross-tenant reference can
// be reported distinctly from a missing one.
type CustomerReader interface {
	GetAnyByID(ctx context.Context, id int64) (*domain.Customer, error)
}
