package pet

import (
	"context"

	"petshop/internal/domain"
)

type Service struct {
	pets      PetRepository
	customers CustomerReader
}

func NewService(pets PetRepository, customers CustomerReader) *Service {
	return &Service{pets: pets, customers: customers}
}

// Create registers a pet under an owner of the same tenant. The pet inherits
// the tenant from the acting request, never from the owner row, so a
// cross-tenant owner is rejected rather than silently re-homed.
func (s *Service) Create(ctx context.Context, tenant *domain.Tenant, req CreateRequest) (*domain.Pet, error) {
	species := domain.PetSpecies(req.Species)
	if !domain.ValidSpecies(species) {
		return nil, ErrInvalidSpecies
	}

	owner, err := s.customers.GetAnyByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrCustomerNotFound
	}
	if owner.TenantID != tenant.ID {
		return nil, ErrCustomerWrongTenant
	}

	p := &domain.Pet{
		TenantID:   tenant.ID,
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Species:    species,
		Breed:      req.Breed,
		BirthDate:  req.BirthDate,
	}
	if err := s.pets.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, tenant *domain.Tenant, id int64) (*domain.Pet, error) {
	p, err := s.pets.GetByID(ctx, tenant.ID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, tenant *domain.Tenant) ([]domain.Pet, error) {
	return s.pets.ListByTenant(ctx, tenant.ID)
}

// Update changes the pet's own attributes. Ownership is fixed at creation.
func (s *Service) Update(ctx context.Context, tenant *domain.Tenant, id int64, req UpdateRequest) (*domain.Pet, error) {
	p, err := s.pets.GetByID(ctx, tenant.ID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	species := domain.PetSpecies(req.Species)
	if !domain.ValidSpecies(species) {
		return nil, ErrInvalidSpecies
	}

	p.Name = req.Name
	p.Species = species
	p.Breed = req.Breed
	p.BirthDate = req.BirthDate
	if err := s.pets.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, tenant *domain.Tenant, id int64) error {
	p, err := s.pets.GetByID(ctx, tenant.ID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return s.pets.Delete(ctx, tenant.ID, id)
}
