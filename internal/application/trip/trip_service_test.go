package trip

import (
	"context"
	"testing"
	"time"

	"github.com/fleetledger/backend/internal/domain/partner"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/domain/trip"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockTripRepository is a mock implementation of TripRepository
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) FindByTripNumber(ctx context.Context, tenantID uuid.UUID, tripNumber string) (*trip.Trip, error) {
	args := m.Called(ctx, tenantID, tripNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]trip.Trip, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]trip.Trip), args.Error(1)
}

func (m *MockTripRepository) ExistsByTripNumber(ctx context.Context, tenantID uuid.UUID, tripNumber string) (bool, error) {
	args := m.Called(ctx, tenantID, tripNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripRepository) Save(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) SaveWithLock(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockSupplierRepository is a mock implementation of SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*partner.Supplier, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockCompanyRepository is a mock implementation of CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Company, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*partner.Company, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Company, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]partner.Company), args.Error(1)
}

func (m *MockCompanyRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *partner.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockVehicleRepository is a mock implementation of VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Vehicle, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByRegistration(ctx context.Context, tenantID uuid.UUID, registrationNumber string) (*partner.Vehicle, error) {
	args := m.Called(ctx, tenantID, registrationNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Vehicle, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]partner.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ExistsByRegistration(ctx context.Context, tenantID uuid.UUID, registrationNumber string) (bool, error) {
	args := m.Called(ctx, tenantID, registrationNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockVehicleRepository) Save(ctx context.Context, vehicle *partner.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockVehicleRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// Test helpers

func newTestTenantID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

func newTestTripID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

type tripServiceFixture struct {
	service      *TripService
	tripRepo     *MockTripRepository
	supplierRepo *MockSupplierRepository
	companyRepo  *MockCompanyRepository
	vehicleRepo  *MockVehicleRepository
	supplierID   uuid.UUID
	companyID    uuid.UUID
	vehicleID    uuid.UUID
}

func newTripServiceFixture() *tripServiceFixture {
	f := &tripServiceFixture{
		tripRepo:     new(MockTripRepository),
		supplierRepo: new(MockSupplierRepository),
		companyRepo:  new(MockCompanyRepository),
		vehicleRepo:  new(MockVehicleRepository),
		supplierID:   uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		companyID:    uuid.MustParse("44444444-4444-4444-4444-444444444444"),
		vehicleID:    uuid.MustParse("55555555-5555-5555-5555-555555555555"),
	}
	f.service = NewTripService(f.tripRepo, f.supplierRepo, f.companyRepo, f.vehicleRepo, zap.NewNop())
	return f
}

// expectReferencesResolve wires all three party lookups to succeed
func (f *tripServiceFixture) expectReferencesResolve(ctx context.Context, tenantID uuid.UUID) {
	supplier, _ := partner.NewSupplier(tenantID, "SUP001", "Ore Supplier")
	company, _ := partner.NewCompany(tenantID, "COM001", "Freight Co")
	vehicle, _ := partner.NewVehicle(tenantID, "CG04AB1234", "Owner", partner.VehicleTypeTruck)
	f.supplierRepo.On("FindByIDForTenant", ctx, tenantID, f.supplierID).Return(supplier, nil)
	f.companyRepo.On("FindByIDForTenant", ctx, tenantID, f.companyID).Return(company, nil)
	f.vehicleRepo.On("FindByIDForTenant", ctx, tenantID, f.vehicleID).Return(vehicle, nil)
}

func (f *tripServiceFixture) createRequest() CreateTripRequest {
	return CreateTripRequest{
		TripNumber:     "TRIP001",
		SupplierID:     f.supplierID,
		CompanyID:      f.companyID,
		VehicleID:      f.vehicleID,
		TripDate:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		LoadingPoint:   "Raipur",
		UnloadingPoint: "Bhilai",
		Tonnage:        decimal.NewFromInt(10),
		Rates: RateTableInput{
			CompanyRatePerTon: decimal.NewFromInt(1000),
			VehicleRatePerTon: decimal.NewFromInt(800),
		},
	}
}

func newStoredTrip(tenantID uuid.UUID) *trip.Trip {
	t, _ := trip.NewTrip(tenantID, "TRIP001",
		uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		uuid.MustParse("44444444-4444-4444-4444-444444444444"),
		uuid.MustParse("55555555-5555-5555-5555-555555555555"),
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "Raipur", "Bhilai",
		decimal.NewFromInt(10),
		trip.RateTable{
			CompanyRatePerTon:  decimal.NewFromInt(1000),
			VehicleRatePerTon:  decimal.NewFromInt(800),
			SupplierRatePerTon: decimal.Zero,
		},
		trip.ExpenseTable{})
	t.ID = newTestTripID()
	t.ClearDomainEvents()
	return t
}

func TestTripService_Create_ComputesSnapshot(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	tenantID := newTestTenantID()

	f.expectReferencesResolve(ctx, tenantID)
	f.tripRepo.On("ExistsByTripNumber", ctx, tenantID, "TRIP001").Return(false, nil)
	f.tripRepo.On("Save", ctx, mock.AnythingOfType("*trip.Trip")).Return(nil)

	result, err := f.service.Create(ctx, tenantID, f.createRequest())

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "TRIP001", result.TripNumber)
	assert.True(t, result.Financials.AmountForCompany.Equal(decimal.NewFromInt(10000)))
	assert.True(t, result.Financials.AmountForVehicle.Equal(decimal.NewFromInt(8000)))
	assert.True(t, result.Financials.Profit.Equal(decimal.NewFromInt(2000)))
	f.tripRepo.AssertExpectations(t)
}

func TestTripService_Create_DuplicateNumber(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	tenantID := newTestTenantID()

	f.expectReferencesResolve(ctx, tenantID)
	f.tripRepo.On("ExistsByTripNumber", ctx, tenantID, "TRIP001").Return(true, nil)

	result, err := f.service.Create(ctx, tenantID, f.createRequest())

	assert.Error(t, err)
	assert.Nil(t, result)
	domainErr, ok := err.(*shared.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	f.tripRepo.AssertNotCalled(t, "Save")
}

func TestTripService_Create_ForeignSupplierReference(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	tenantID := newTestTenantID()

	// Supplier lookup misses within this tenant: could be another tenant's
	// record or a nonexistent one, and the error must not distinguish.
	f.supplierRepo.On("FindByIDForTenant", ctx, tenantID, f.supplierID).
		Return(nil, shared.ErrNotFound)

	result, err := f.service.Create(ctx, tenantID, f.createRequest())

	assert.Error(t, err)
	assert.Nil(t, result)
	domainErr, ok := err.(*shared.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "FOREIGN_TENANT_REFERENCE", domainErr.Code)
	f.tripRepo.AssertNotCalled(t, "Save")
}

func TestTripService_Create_ForeignVehicleReference(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	tenantID := newTestTenantID()

	supplier, _ := partner.NewSupplier(tenantID, "SUP001", "Ore Supplier")
	company, _ := partner.NewCompany(tenantID, "COM001", "Freight Co")
	f.supplierRepo.On("FindByIDForTenant", ctx, tenantID, f.supplierID).Return(supplier, nil)
	f.companyRepo.On("FindByIDForTenant", ctx, tenantID, f.companyID).Return(company, nil)
	f.vehicleRepo.On("FindByIDForTenant", ctx, tenantID, f.vehicleID).
		Return(nil, shared.ErrNotFound)

	_, err := f.service.Create(ctx, tenantID, f.createRequest())

	domainErr, ok := err.(*shared.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "FOREIGN_TENANT_REFERENCE", domainErr.Code)
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	tenantID := newTestTenantID()
	tripID := newTestTripID()

	// Cross-tenant access surfaces as a plain miss, never a permission error
	f.tripRepo.On("FindByIDForTenant", ctx, tenantID, tripID).
		Return(nil, shared.ErrNotFound)

	result, err := f.service.GetByID(ctx, tenantID, tripID)

	assert.Error(t, err)
	assert.Nil(t, result)
	domainErr, ok := err.(*shared.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestTripService_Update_TonnageRecomputesSnapshot(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	tenantID := newTestTenantID()
	stored := newStoredTrip(tenantID)

	f.tripRepo.On("FindByIDForTenant", ctx, tenantID, stored.ID).Return(stored, nil)
	f.tripRepo.On("SaveWithLock", ctx, stored).Return(nil)

	newTonnage := decimal.NewFromInt(20)
	result, err := f.service.Update(ctx, tenantID, stored.ID, UpdateTripRequest{
		Tonnage: &newTonnage,
	})

	assert.NoError(t, err)
	assert.True(t, result.Financials.AmountForCompany.Equal(decimal.NewFromInt(20000)))
	assert.True(t, result.Financials.AmountForVehicle.Equal(decimal.NewFromInt(16000)))
	assert.True(t, result.Financials.Profit.Equal(decimal.NewFromInt(4000)))
	f.tripRepo.AssertExpectations(t)
}

func TestTripService_Update_VersionConflict(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	tenantID := newTestTenantID()
	stored := newStoredTrip(tenantID)
	stored.Version = 3

	f.tripRepo.On("FindByIDForTenant", ctx, tenantID, stored.ID).Return(stored, nil)

	staleVersion := 2
	newTonnage := decimal.NewFromInt(20)
	result, err := f.service.Update(ctx, tenantID, stored.ID, UpdateTripRequest{
		Tonnage: &newTonnage,
		Version: &staleVersion,
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	domainErr, ok := err.(*shared.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "CONCURRENT_MODIFICATION", domainErr.Code)
	f.tripRepo.AssertNotCalled(t, "SaveWithLock")
}

func TestTripService_Update_NegativeTonnageRejected(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	tenantID := newTestTenantID()
	stored := newStoredTrip(tenantID)

	f.tripRepo.On("FindByIDForTenant", ctx, tenantID, stored.ID).Return(stored, nil)

	newTonnage := decimal.NewFromInt(-5)
	_, err := f.service.Update(ctx, tenantID, stored.ID, UpdateTripRequest{
		Tonnage: &newTonnage,
	})

	assert.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "INVALID_ARGUMENT", domainErr.Code)
	f.tripRepo.AssertNotCalled(t, "SaveWithLock")
}

func TestTripService_Recalculate(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	tenantID := newTestTenantID()
	stored := newStoredTrip(tenantID)
	// Simulate a drifted snapshot that recalculation must repair
	stored.Financials = trip.Financials{}

	f.tripRepo.On("FindByIDForTenant", ctx, tenantID, stored.ID).Return(stored, nil)
	f.tripRepo.On("SaveWithLock", ctx, stored).Return(nil)

	result, err := f.service.Recalculate(ctx, tenantID, stored.ID)

	assert.NoError(t, err)
	assert.True(t, result.Profit.Equal(decimal.NewFromInt(2000)))
	f.tripRepo.AssertExpectations(t)
}

func TestTripService_StatusTransitions(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	tenantID := newTestTenantID()
	stored := newStoredTrip(tenantID)

	f.tripRepo.On("FindByIDForTenant", ctx, tenantID, stored.ID).Return(stored, nil)
	f.tripRepo.On("SaveWithLock", ctx, stored).Return(nil)

	result, err := f.service.Start(ctx, tenantID, stored.ID)
	assert.NoError(t, err)
	assert.Equal(t, "running", result.Status)

	result, err = f.service.Complete(ctx, tenantID, stored.ID)
	assert.NoError(t, err)
	assert.Equal(t, "completed", result.Status)

	// Completed is terminal
	_, err = f.service.Cancel(ctx, tenantID, stored.ID, CancelTripRequest{Reason: "duplicate"})
	assert.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestTripService_Delete_SoftDeletes(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	tenantID := newTestTenantID()
	stored := newStoredTrip(tenantID)

	f.tripRepo.On("FindByIDForTenant", ctx, tenantID, stored.ID).Return(stored, nil)
	f.tripRepo.On("SaveWithLock", ctx, stored).Return(nil)

	err := f.service.Delete(ctx, tenantID, stored.ID)

	assert.NoError(t, err)
	assert.True(t, stored.Deleted)
	assert.False(t, stored.Active)
	assert.NotNil(t, stored.DeletedAt)
	f.tripRepo.AssertExpectations(t)
}

func TestTripService_List_AppliesDefaults(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	tenantID := newTestTenantID()

	f.tripRepo.On("FindAllForTenant", ctx, tenantID, mock.MatchedBy(func(filter shared.Filter) bool {
		return filter.Page == 1 && filter.PageSize == 20 &&
			filter.OrderBy == "trip_date" && filter.OrderDir == "desc"
	})).Return([]trip.Trip{*newStoredTrip(tenantID)}, nil)
	f.tripRepo.On("CountForTenant", ctx, tenantID, mock.Anything).Return(int64(1), nil)

	results, total, err := f.service.List(ctx, tenantID, TripListFilter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, results, 1)
}
