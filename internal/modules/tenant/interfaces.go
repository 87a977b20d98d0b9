package tenant

import (
	"context"

	"petshop/internal/domain"
)

type TenantRepository interface {
	Create(ctx context.Context, t *domain.Tenant) error
	ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error)
}
