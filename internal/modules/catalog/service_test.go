package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"petshop/internal/domain"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	if s != nil && args.Error(0) == nil {
		s.ID = 20
	}
	return args.Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Service, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListByTenant(ctx context.Context, tenantID int64) ([]domain.Service, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, tenantID, id int64) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func testTenant() *domain.Tenant {
	return &domain.Tenant{ID: 1, Subdomain: "banhocao", Name: "Banho do Cão"}
}

func TestCreate_Success(t *testing.T) {
	repo := new(MockServiceRepository)
	tenant := testTenant()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool {
		return s.TenantID == tenant.ID &&
			s.Price.StringFixed(2) == "89.90" &&
			s.DurationMinutes == 45 &&
			s.IsActive
	})).Return(nil)

	s := NewService(repo)
	svc, err := s.Create(context.Background(), tenant, UpsertRequest{
		Name:            "Banho e Tosa",
		Price:           "89.90",
		DurationMinutes: 45,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(20), svc.ID)
	repo.AssertExpectations(t)
}

func TestCreate_ZeroPriceAllowed(t *testing.T) {
	repo := new(MockServiceRepository)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Service")).Return(nil)

	s := NewService(repo)
	svc, err := s.Create(context.Background(), testTenant(), UpsertRequest{
		Name:            "Avaliação gratuita",
		Price:           "0",
		DurationMinutes: 15,
	})

	assert.NoError(t, err)
	assert.True(t, svc.Price.IsZero())
}

func TestCreate_NegativePrice(t *testing.T) {
	repo := new(MockServiceRepository)

	s := NewService(repo)
	_, err := s.Create(context.Background(), testTenant(), UpsertRequest{
		Name:            "Banho",
		Price:           "-1.00",
		DurationMinutes: 30,
	})

	assert.ErrorIs(t, err, ErrInvalidPrice)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_UnparsablePrice(t *testing.T) {
	s := NewService(new(MockServiceRepository))
	_, err := s.Create(context.Background(), testTenant(), UpsertRequest{
		Name:            "Banho",
		Price:           "abc",
		DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestCreate_NonPositiveDuration(t *testing.T) {
	for _, d := range []int{0, -30} {
		s := NewService(new(MockServiceRepository))
		_, err := s.Create(context.Background(), testTenant(), UpsertRequest{
			Name:            "Banho",
			Price:           "50.00",
			DurationMinutes: d,
		})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockServiceRepository)
	tenant := testTenant()

	repo.On("GetByID", mock.Anything, tenant.ID, int64(20)).Return(nil, nil)

	s := NewService(repo)
	_, err := s.Update(context.Background(), tenant, 20, UpsertRequest{
		Name:            "Banho",
		Price:           "50.00",
		DurationMinutes: 30,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}
