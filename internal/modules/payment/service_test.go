package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"petshop/internal/domain"
	"petshop/internal/pkg/mercadopago"
)

// Mock collaborators
type MockAppointmentReader struct {
	mock.Mock
}

func (m *MockAppointmentReader) GetByID(ctx context.Context, tenantID, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil && args.Error(0) == nil {
		p.ID = 555 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) SetExternalID(ctx context.Context, id int64, externalID string) error {
	args := m.Called(ctx, id, externalID)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByAppointmentID(ctx context.Context, tenantID, appointmentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, tenantID, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.Payment, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ApproveIdempotent(ctx context.Context, externalID string) (bool, error) {
	args := m.Called(ctx, externalID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) RejectIdempotent(ctx context.Context, externalID string) (bool, error) {
	args := m.Called(ctx, externalID)
	return args.Bool(0), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreatePreference(ctx context.Context, amount decimal.Decimal, description string) (*mercadopago.Preference, error) {
	args := m.Called(ctx, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mercadopago.Preference), args.Error(1)
}

func (m *MockGateway) GetPayment(ctx context.Context, externalID string) (*mercadopago.Payment, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mercadopago.Payment), args.Error(1)
}

func testTenant() *domain.Tenant {
	return &domain.Tenant{ID: 1, Subdomain: "banhocao", Name: "Banho do Cão"}
}

func preBookedAppointment(tenantID int64) *domain.Appointment {
	return &domain.Appointment{
		ID:        7,
		TenantID:  tenantID,
		ServiceID: 20,
		Status:    domain.StatusPreBooked,
		Service: &domain.Service{
			ID:       20,
			TenantID: tenantID,
			Name:     "Banho e Tosa",
			Price:    decimal.RequireFromString("100.00"),
		},
	}
}

func TestCheckout_Success(t *testing.T) {
	appointments := new(MockAppointmentReader)
	payments := new(MockPaymentRepository)
	gateway := new(MockGateway)
	tenant := testTenant()

	appointments.On("GetByID", mock.Anything, tenant.ID, int64(7)).Return(preBookedAppointment(tenant.ID), nil)
	payments.On("GetByAppointmentID", mock.Anything, tenant.ID, int64(7)).Return(nil, nil)
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.AppointmentID == 7 &&
			p.Status == domain.PaymentPending &&
			p.Amount.StringFixed(2) == "50.00" // exactly half the price
	})).Return(nil)
	gateway.On("CreatePreference", mock.Anything, mock.Anything, "Banho e Tosa").
		Return(&mercadopago.Preference{ID: "mp-123", InitPoint: "https://mp.example/init/mp-123"}, nil)
	payments.On("SetExternalID", mock.Anything, int64(555), "mp-123").Return(nil)

	s := NewService(appointments, payments, gateway, nil)
	link, err := s.Checkout(context.Background(), tenant, 7)

	assert.NoError(t, err)
	assert.Equal(t, "https://mp.example/init/mp-123", link)
	payments.AssertExpectations(t)
}

func TestCheckout_GatewayFailureRollsBackPayment(t *testing.T) {
	appointments := new(MockAppointmentReader)
	payments := new(MockPaymentRepository)
	gateway := new(MockGateway)
	tenant := testTenant()

	appointments.On("GetByID", mock.Anything, tenant.ID, int64(7)).Return(preBookedAppointment(tenant.ID), nil)
	payments.On("GetByAppointmentID", mock.Anything, tenant.ID, int64(7)).Return(nil, nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	gateway.On("CreatePreference", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("upstream 500"))
	payments.On("Delete", mock.Anything, int64(555)).Return(nil)

	s := NewService(appointments, payments, gateway, nil)
	_, err := s.Checkout(context.Background(), tenant, 7)

	assert.ErrorIs(t, err, ErrPaymentFailed)
	payments.AssertCalled(t, "Delete", mock.Anything, int64(555))
	payments.AssertNotCalled(t, "SetExternalID", mock.Anything, mock.Anything, mock.Anything)
}

// A failure persisting the gateway reference must not strand a PENDING row:
// it would block retries via the duplicate-checkout check while no webhook
// could ever reach it.
func TestCheckout_ExternalIDFailureRollsBackPayment(t *testing.T) {
	appointments := new(MockAppointmentReader)
	payments := new(MockPaymentRepository)
	gateway := new(MockGateway)
	tenant := testTenant()

	appointments.On("GetByID", mock.Anything, tenant.ID, int64(7)).Return(preBookedAppointment(tenant.ID), nil)
	payments.On("GetByAppointmentID", mock.Anything, tenant.ID, int64(7)).Return(nil, nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	gateway.On("CreatePreference", mock.Anything, mock.Anything, mock.Anything).
		Return(&mercadopago.Preference{ID: "mp-123", InitPoint: "https://mp.example/init/mp-123"}, nil)
	payments.On("SetExternalID", mock.Anything, int64(555), "mp-123").Return(errors.New("connection reset"))
	payments.On("Delete", mock.Anything, int64(555)).Return(nil)

	s := NewService(appointments, payments, gateway, nil)
	_, err := s.Checkout(context.Background(), tenant, 7)

	assert.Error(t, err)
	payments.AssertCalled(t, "Delete", mock.Anything, int64(555))
}

func TestCheckout_RequiresPreBooked(t *testing.T) {
	tenant := testTenant()
	for _, status := range []domain.AppointmentStatus{
		domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled,
		domain.StatusNoShow, domain.StatusExpired,
	} {
		t.Run(string(status), func(t *testing.T) {
			appointments := new(MockAppointmentReader)
			payments := new(MockPaymentRepository)

			a := preBookedAppointment(tenant.ID)
			a.Status = status
			appointments.On("GetByID", mock.Anything, tenant.ID, int64(7)).Return(a, nil)

			s := NewService(appointments, payments, new(MockGateway), nil)
			_, err := s.Checkout(context.Background(), tenant, 7)

			assert.ErrorIs(t, err, ErrInvalidStatus)
			payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCheckout_DuplicateCheckout(t *testing.T) {
	appointments := new(MockAppointmentReader)
	payments := new(MockPaymentRepository)
	tenant := testTenant()

	appointments.On("GetByID", mock.Anything, tenant.ID, int64(7)).Return(preBookedAppointment(tenant.ID), nil)
	payments.On("GetByAppointmentID", mock.Anything, tenant.ID, int64(7)).
		Return(&domain.Payment{ID: 3, AppointmentID: 7, Status: domain.PaymentPending}, nil)

	s := NewService(appointments, payments, new(MockGateway), nil)
	_, err := s.Checkout(context.Background(), tenant, 7)

	assert.ErrorIs(t, err, ErrCheckoutExists)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_AppointmentNotFound(t *testing.T) {
	appointments := new(MockAppointmentReader)
	tenant := testTenant()

	appointments.On("GetByID", mock.Anything, tenant.ID, int64(7)).Return(nil, nil)

	s := NewService(appointments, new(MockPaymentRepository), new(MockGateway), nil)
	_, err := s.Checkout(context.Background(), tenant, 7)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func webhookFor(id string) WebhookNotification {
	var n WebhookNotification
	n.Type = "payment"
	n.Data.ID = id
	return n
}

func TestWebhook_IgnoresNonPaymentType(t *testing.T) {
	payments := new(MockPaymentRepository)

	s := NewService(new(MockAppointmentReader), payments, new(MockGateway), nil)
	n := WebhookNotification{Type: "merchant_order"}
	result, err := s.HandleWebhook(context.Background(), n)

	assert.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, result.Status)
	payments.AssertNotCalled(t, "GetByExternalID", mock.Anything, mock.Anything)
}

func TestWebhook_MissingID(t *testing.T) {
	s := NewService(new(MockAppointmentReader), new(MockPaymentRepository), new(MockGateway), nil)
	_, err := s.HandleWebhook(context.Background(), webhookFor(""))
	assert.ErrorIs(t, err, ErrMissingPaymentID)
}

func TestWebhook_UnknownReference(t *testing.T) {
	payments := new(MockPaymentRepository)
	payments.On("GetByExternalID", mock.Anything, "mp-nope").Return(nil, nil)

	s := NewService(new(MockAppointmentReader), payments, new(MockGateway), nil)
	_, err := s.HandleWebhook(context.Background(), webhookFor("mp-nope"))

	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestWebhook_Approved(t *testing.T) {
	payments := new(MockPaymentRepository)
	gateway := new(MockGateway)

	payments.On("GetByExternalID", mock.Anything, "mp-123").
		Return(&domain.Payment{ID: 3, AppointmentID: 7, Status: domain.PaymentPending}, nil)
	gateway.On("GetPayment", mock.Anything, "mp-123").
		Return(&mercadopago.Payment{ID: "mp-123", Status: "approved"}, nil)
	payments.On("ApproveIdempotent", mock.Anything, "mp-123").Return(true, nil)

	s := NewService(new(MockAppointmentReader), payments, gateway, nil)
	result, err := s.HandleWebhook(context.Background(), webhookFor("mp-123"))

	assert.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, result.Status)
	assert.Equal(t, "APPROVED", result.PaymentStatus)
}

func TestWebhook_Rejected(t *testing.T) {
	payments := new(MockPaymentRepository)
	gateway := new(MockGateway)

	payments.On("GetByExternalID", mock.Anything, "mp-123").
		Return(&domain.Payment{ID: 3, AppointmentID: 7, Status: domain.PaymentPending}, nil)
	gateway.On("GetPayment", mock.Anything, "mp-123").
		Return(&mercadopago.Payment{ID: "mp-123", Status: "rejected"}, nil)
	payments.On("RejectIdempotent", mock.Anything, "mp-123").Return(true, nil)

	s := NewService(new(MockAppointmentReader), payments, gateway, nil)
	result, err := s.HandleWebhook(context.Background(), webhookFor("mp-123"))

	assert.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, result.Status)
	assert.Equal(t, "REJECTED", result.PaymentStatus)
	payments.AssertNotCalled(t, "ApproveIdempotent", mock.Anything, mock.Anything)
}

func TestWebhook_UnknownStatusIsPending(t *testing.T) {
	payments := new(MockPaymentRepository)
	gateway := new(MockGateway)

	payments.On("GetByExternalID", mock.Anything, "mp-123").
		Return(&domain.Payment{ID: 3, AppointmentID: 7, Status: domain.PaymentPending}, nil)
	gateway.On("GetPayment", mock.Anything, "mp-123").
		Return(&mercadopago.Payment{ID: "mp-123", Status: "in_process"}, nil)

	s := NewService(new(MockAppointmentReader), payments, gateway, nil)
	result, err := s.HandleWebhook(context.Background(), webhookFor("mp-123"))

	assert.NoError(t, err)
	assert.Equal(t, OutcomePending, result.Status)
	assert.Equal(t, "in_process", result.PaymentStatus)
	payments.AssertNotCalled(t, "ApproveIdempotent", mock.Anything, mock.Anything)
	payments.AssertNotCalled(t, "RejectIdempotent", mock.Anything, mock.Anything)
}

func TestWebhook_GatewayLookupFailureIsHard(t *testing.T) {
	payments := new(MockPaymentRepository)
	gateway := new(MockGateway)

	payments.On("GetByExternalID", mock.Anything, "mp-123").
		Return(&domain.Payment{ID: 3, AppointmentID: 7, Status: domain.PaymentPending}, nil)
	gateway.On("GetPayment", mock.Anything, "mp-123").Return(nil, errors.New("timeout"))

	s := NewService(new(MockAppointmentReader), payments, gateway, nil)
	_, err := s.HandleWebhook(context.Background(), webhookFor("mp-123"))

	assert.ErrorIs(t, err, ErrPaymentFailed)
}

// Five deliveries of the same approval: the first mutates, the rest short
// circuit on the processed flag. At most one settlement call wins even when
// the pre-check races.
func TestWebhook_DuplicateDeliveries(t *testing.T) {
	payments := new(MockPaymentRepository)
	gateway := new(MockGateway)

	// first delivery sees an unprocessed payment, settles it
	payments.On("GetByExternalID", mock.Anything, "mp-123").
		Return(&domain.Payment{ID: 3, AppointmentID: 7, Status: domain.PaymentPending}, nil).Once()
	gateway.On("GetPayment", mock.Anything, "mp-123").
		Return(&mercadopago.Payment{ID: "mp-123", Status: "approved"}, nil).Once()
	payments.On("ApproveIdempotent", mock.Anything, "mp-123").Return(true, nil).Once()

	// later deliveries see the processed flag and stop before the gateway
	payments.On("GetByExternalID", mock.Anything, "mp-123").
		Return(&domain.Payment{ID: 3, AppointmentID: 7, Status: domain.PaymentApproved, WebhookProcessed: true}, nil)

	s := NewService(new(MockAppointmentReader), payments, gateway, nil)

	first, err := s.HandleWebhook(context.Background(), webhookFor("mp-123"))
	assert.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, first.Status)

	for i := 0; i < 4; i++ {
		result, err := s.HandleWebhook(context.Background(), webhookFor("mp-123"))
		assert.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyProcessed, result.Status)
	}

	gateway.AssertNumberOfCalls(t, "GetPayment", 1)
	payments.AssertNumberOfCalls(t, "ApproveIdempotent", 1)
}

// A delivery that loses the settlement race: pre-check passed but the locked
// update found the flag already set.
func TestWebhook_LostRaceReportsAlreadyProcessed(t *testing.T) {
	payments := new(MockPaymentRepository)
	gateway := new(MockGateway)

	payments.On("GetByExternalID", mock.Anything, "mp-123").
		Return(&domain.Payment{ID: 3, AppointmentID: 7, Status: domain.PaymentPending}, nil)
	gateway.On("GetPayment", mock.Anything, "mp-123").
		Return(&mercadopago.Payment{ID: "mp-123", Status: "approved"}, nil)
	payments.On("ApproveIdempotent", mock.Anything, "mp-123").Return(false, nil)

	s := NewService(new(MockAppointmentReader), payments, gateway, nil)
	result, err := s.HandleWebhook(context.Background(), webhookFor("mp-123"))

	assert.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyProcessed, result.Status)
}
