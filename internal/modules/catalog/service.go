package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"petshop/internal/domain"
)

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

// parsePrice accepts the price as a decimal string so callers never send
// binary floats for money. Zero is allowed (free services), negatives are not.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return price.Round(2), nil
}

func (s *Service) Create(ctx context.Context, tenant *domain.Tenant, req UpsertRequest) (*domain.Service, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	svc := &domain.Service{
		TenantID:        tenant.ID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        active,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) Get(ctx context.Context, tenant *domain.Tenant, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, tenant.ID, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *Service) List(ctx context.Context, tenant *domain.Tenant) ([]domain.Service, error) {
	return s.services.ListByTenant(ctx, tenant.ID)
}

// Update rewrites price and duration; appointments already booked keep the
// end times computed at booking time.
func (s *Service) Update(ctx context.Context, tenant *domain.Tenant, id int64, req UpsertRequest) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, tenant.ID, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = price
	svc.DurationMinutes = req.DurationMinutes
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) Delete(ctx context.Context, tenant *domain.Tenant, id int64) error {
	svc, err := s.services.GetByID(ctx, tenant.ID, id)
	if err != nil {
		return err
	}
	if svc == nil {
		return ErrNotFound
	}
	return s.services.Delete(ctx, tenant.ID, id)
}
