package tenant

import (
	"context"
	"regexp"
	"strings"

	"petshop/internal/domain"
)

// subdomainRe follows DNS label rules: lowercase alphanumerics and hyphens,
// no leading/trailing hyphen, max 63 chars (enforced by binding).
var subdomainRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

type Service struct {
	tenants TenantRepository
}

func NewService(tenants TenantRepository) *Service {
	return &Service{tenants: tenants}
}

// Create onboards a new shop. The subdomain is the routing key, so it is
// normalized to lowercase and must be globally unique.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Tenant, error) {
	sub := strings.ToLower(strings.TrimSpace(req.Subdomain))
	if !subdomainRe.MatchString(sub) {
		return nil, ErrInvalidSubdomain
	}

	exists, err := s.tenants.ExistsBySubdomain(ctx, sub)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSubdomainTaken
	}

	t := &domain.Tenant{
		Name:      req.Name,
		Subdomain: sub,
		IsActive:  true,
	}
	if err := s.tenants.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
