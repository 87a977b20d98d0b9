package catalog

import (
	"context"

	"petshop/internal/domain"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Service, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, tenantID, id int64) error
}
