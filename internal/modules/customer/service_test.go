package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"petshop/internal/domain"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	if c != nil && args.Error(0) == nil {
		c.ID = 42
	}
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListByTenant(ctx context.Context, tenantID int64) ([]domain.Customer, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, tenantID, id int64) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) ExistsByCPF(ctx context.Context, tenantID int64, cpf string, excludeID int64) (bool, error) {
	args := m.Called(ctx, tenantID, cpf, excludeID)
	return args.Bool(0), args.Error(1)
}

// 529.982.247-25 is arithmetically valid.
const validCPF = "52998224725"

func testTenant() *domain.Tenant {
	return &domain.Tenant{ID: 1, Subdomain: "banhocao", Name: "Banho do Cão"}
}

func TestCreate_NormalizesCPF(t *testing.T) {
	repo := new(MockCustomerRepository)
	tenant := testTenant()

	repo.On("ExistsByCPF", mock.Anything, tenant.ID, validCPF, int64(0)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
		return c.CPF == validCPF && c.TenantID == tenant.ID
	})).Return(nil)

	s := NewService(repo)
	c, err := s.Create(context.Background(), tenant, CreateRequest{
		Name: "Maria Souza",
		CPF:  "529.982.247-25",
	})

	assert.NoError(t, err)
	assert.Equal(t, validCPF, c.CPF)
	repo.AssertExpectations(t)
}

func TestCreate_InvalidCPF(t *testing.T) {
	repo := new(MockCustomerRepository)

	s := NewService(repo)
	_, err := s.Create(context.Background(), testTenant(), CreateRequest{
		Name: "Maria Souza",
		CPF:  "12345678900",
	})

	assert.ErrorIs(t, err, ErrInvalidCPF)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RepdigitCPF(t *testing.T) {
	s := NewService(new(MockCustomerRepository))
	_, err := s.Create(context.Background(), testTenant(), CreateRequest{
		Name: "Maria Souza",
		CPF:  "111.111.111-11",
	})
	assert.ErrorIs(t, err, ErrInvalidCPF)
}

func TestCreate_DuplicateCPFInTenant(t *testing.T) {
	repo := new(MockCustomerRepository)
	tenant := testTenant()

	repo.On("ExistsByCPF", mock.Anything, tenant.ID, validCPF, int64(0)).Return(true, nil)

	s := NewService(repo)
	_, err := s.Create(context.Background(), tenant, CreateRequest{
		Name: "Maria Souza",
		CPF:  validCPF,
	})

	assert.ErrorIs(t, err, ErrCPFDuplicate)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_SameCPFSkipsDuplicateCheck(t *testing.T) {
	repo := new(MockCustomerRepository)
	tenant := testTenant()

	repo.On("GetByID", mock.Anything, tenant.ID, int64(42)).Return(&domain.Customer{
		ID: 42, TenantID: tenant.ID, Name: "Maria Souza", CPF: validCPF,
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	s := NewService(repo)
	c, err := s.Update(context.Background(), tenant, 42, UpdateRequest{
		Name: "Maria S. Lima",
		CPF:  validCPF,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Maria S. Lima", c.Name)
	repo.AssertNotCalled(t, "ExistsByCPF", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	tenant := testTenant()

	repo.On("GetByID", mock.Anything, tenant.ID, int64(42)).Return(nil, nil)

	s := NewService(repo)
	_, err := s.Get(context.Background(), tenant, 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	tenant := testTenant()

	repo.On("GetByID", mock.Anything, tenant.ID, int64(42)).Return(nil, nil)

	s := NewService(repo)
	err := s.Delete(context.Background(), tenant, 42)

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
