package customer

import (
	"context"

	"petshop/internal/domain"
	"petshop/internal/pkg/validator"
)

type Service struct {
	customers CustomerRepository
}

func NewService(customers CustomerRepository) *Service {
	return &Service{customers: customers}
}

// Create registers a customer after CPF validation. The CPF is stored in its
// normalized 11-digit form; uniqueness is per tenant, so the same person can
// be a customer of two shops.
func (s *Service) Create(ctx context.Context, tenant *domain.Tenant, req CreateRequest) (*domain.Customer, error) {
	cpf := validator.NormalizeCPF(req.CPF)
	if !validator.ValidCPF(cpf) {
		return nil, ErrInvalidCPF
	}

	exists, err := s.customers.ExistsByCPF(ctx, tenant.ID, cpf, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCPFDuplicate
	}

	c := &domain.Customer{
		TenantID: tenant.ID,
		Name:     req.Name,
		CPF:      cpf,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, tenant *domain.Tenant, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, tenant.ID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, tenant *domain.Tenant) ([]domain.Customer, error) {
	return s.customers.ListByTenant(ctx, tenant.ID)
}

func (s *Service) Update(ctx context.Context, tenant *domain.Tenant, id int64, req UpdateRequest) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, tenant.ID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	cpf := validator.NormalizeCPF(req.CPF)
	if !validator.ValidCPF(cpf) {
		return nil, ErrInvalidCPF
	}
	if cpf != c.CPF {
		exists, err := s.customers.ExistsByCPF(ctx, tenant.ID, cpf, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrCPFDuplicate
		}
	}

	c.Name = req.Name
	c.CPF = cpf
	c.Email = req.Email
	c.Phone = req.Phone
	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the customer; pets and their appointments cascade.
func (s *Service) Delete(ctx context.Context, tenant *domain.Tenant, id int64) error {
	c, err := s.customers.GetByID(ctx, tenant.ID, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrNotFound
	}
	return s.customers.Delete(ctx, tenant.ID, id)
}
