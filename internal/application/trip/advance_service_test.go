package trip

import (
	"context"
	"testing"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/domain/trip"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockAdvancePaymentRepository is a mock implementation of AdvancePaymentRepository
type MockAdvancePaymentRepository struct {
	mock.Mock
}

func (m *MockAdvancePaymentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trip.AdvancePayment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.AdvancePayment), args.Error(1)
}

func (m *MockAdvancePaymentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]trip.AdvancePayment, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]trip.AdvancePayment), args.Error(1)
}

func (m *MockAdvancePaymentRepository) FindByTrip(ctx context.Context, tenantID, tripID uuid.UUID) ([]trip.AdvancePayment, error) {
	args := m.Called(ctx, tenantID, tripID)
	return args.Get(0).([]trip.AdvancePayment), args.Error(1)
}

func (m *MockAdvancePaymentRepository) Save(ctx context.Context, advance *trip.AdvancePayment) error {
	args := m.Called(ctx, advance)
	return args.Error(0)
}

func (m *MockAdvancePaymentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newAdvanceService() (*AdvancePaymentService, *MockAdvancePaymentRepository, *MockTripRepository) {
	advanceRepo := new(MockAdvancePaymentRepository)
	tripRepo := new(MockTripRepository)
	return NewAdvancePaymentService(advanceRepo, tripRepo, zap.NewNop()), advanceRepo, tripRepo
}

func TestAdvancePaymentService_Create_Overall(t *testing.T) {
	service, advanceRepo, _ := newAdvanceService()
	ctx := context.Background()
	tenantID := newTestTenantID()

	advanceRepo.On("Save", ctx, mock.AnythingOfType("*trip.AdvancePayment")).Return(nil)

	result, err := service.Create(ctx, tenantID, CreateAdvancePaymentRequest{
		PayerRole:    "company",
		ReceiverRole: "vehicle",
		Amount:       decimal.NewFromInt(5000),
		Scope:        "overall",
		PaidOn:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Note:         "diesel advance",
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "company", result.PayerRole)
	assert.Equal(t, "vehicle", result.ReceiverRole)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(5000)))
	assert.Nil(t, result.TripID)
	advanceRepo.AssertExpectations(t)
}

func TestAdvancePaymentService_Create_TripScoped(t *testing.T) {
	service, advanceRepo, tripRepo := newAdvanceService()
	ctx := context.Background()
	tenantID := newTestTenantID()
	stored := newStoredTrip(tenantID)

	tripRepo.On("FindByIDForTenant", ctx, tenantID, stored.ID).Return(stored, nil)
	advanceRepo.On("Save", ctx, mock.AnythingOfType("*trip.AdvancePayment")).Return(nil)

	result, err := service.Create(ctx, tenantID, CreateAdvancePaymentRequest{
		PayerRole:    "supplier",
		ReceiverRole: "company",
		Amount:       decimal.NewFromInt(12000),
		Scope:        "trip",
		TripID:       &stored.ID,
		PaidOn:       time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, &stored.ID, result.TripID)
	advanceRepo.AssertExpectations(t)
}

func TestAdvancePaymentService_Create_ForeignTripReference(t *testing.T) {
	service, advanceRepo, tripRepo := newAdvanceService()
	ctx := context.Background()
	tenantID := newTestTenantID()
	foreignTripID := uuid.MustParse("99999999-9999-9999-9999-999999999999")

	tripRepo.On("FindByIDForTenant", ctx, tenantID, foreignTripID).
		Return(nil, shared.ErrNotFound)

	result, err := service.Create(ctx, tenantID, CreateAdvancePaymentRequest{
		PayerRole:    "supplier",
		ReceiverRole: "company",
		Amount:       decimal.NewFromInt(12000),
		Scope:        "trip",
		TripID:       &foreignTripID,
		PaidOn:       time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	domainErr, ok := err.(*shared.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "FOREIGN_TENANT_REFERENCE", domainErr.Code)
	advanceRepo.AssertNotCalled(t, "Save")
}

func TestAdvancePaymentService_Create_InvalidRolePair(t *testing.T) {
	service, advanceRepo, _ := newAdvanceService()
	ctx := context.Background()
	tenantID := newTestTenantID()

	result, err := service.Create(ctx, tenantID, CreateAdvancePaymentRequest{
		PayerRole:    "company",
		ReceiverRole: "company",
		Amount:       decimal.NewFromInt(5000),
		Scope:        "overall",
		PaidOn:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	domainErr, ok := err.(*shared.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "INVALID_ARGUMENT", domainErr.Code)
	advanceRepo.AssertNotCalled(t, "Save")
}

func TestAdvancePaymentService_Delete_SoftDeletes(t *testing.T) {
	service, advanceRepo, _ := newAdvanceService()
	ctx := context.Background()
	tenantID := newTestTenantID()

	advance, err := trip.NewAdvancePayment(tenantID, trip.PartyRoleCompany, trip.PartyRoleVehicle,
		decimal.NewFromInt(5000), trip.AdvanceScopeOverall, nil,
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "")
	assert.NoError(t, err)
	advance.ID = uuid.MustParse("66666666-6666-6666-6666-666666666666")

	advanceRepo.On("FindByIDForTenant", ctx, tenantID, advance.ID).Return(advance, nil)
	advanceRepo.On("Save", ctx, advance).Return(nil)

	err = service.Delete(ctx, tenantID, advance.ID)

	assert.NoError(t, err)
	assert.True(t, advance.Deleted)
	assert.NotNil(t, advance.DeletedAt)
	advanceRepo.AssertExpectations(t)
}

func TestAdvancePaymentService_List_AppliesDefaults(t *testing.T) {
	service, advanceRepo, _ := newAdvanceService()
	ctx := context.Background()
	tenantID := newTestTenantID()

	advanceRepo.On("FindAllForTenant", ctx, tenantID, mock.MatchedBy(func(filter shared.Filter) bool {
		return filter.Page == 1 && filter.PageSize == 20 && filter.OrderBy == "paid_on"
	})).Return([]trip.AdvancePayment{}, nil)
	advanceRepo.On("CountForTenant", ctx, tenantID, mock.Anything).Return(int64(0), nil)

	results, total, err := service.List(ctx, tenantID, AdvancePaymentListFilter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, results)
}
