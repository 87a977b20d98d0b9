package customer

import (
	"context"

	"petshop/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Customer, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, tenantID, id int64) error
	ExistsByCPF(ctx context.Context, tenantID int64, cpf string, excludeID int64) (bool, error)
}
