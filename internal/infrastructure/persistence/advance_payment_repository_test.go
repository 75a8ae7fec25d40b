package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/domain/trip"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAdvanceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&trip.AdvancePayment{}))

	return db
}

func newTestAdvance(t *testing.T, tenantID uuid.UUID, tripID *uuid.UUID, amount string, paidOn time.Time) *trip.AdvancePayment {
	t.Helper()

	scope := trip.AdvanceScopeOverall
	if tripID != nil {
		scope = trip.AdvanceScopeTrip
	}
	advance, err := trip.NewAdvancePayment(
		tenantID,
		trip.PartyRoleCompany,
		trip.PartyRoleVehicle,
		decimal.RequireFromString(amount),
		scope,
		tripID,
		paidOn,
		"diesel advance",
	)
	require.NoError(t, err)
	advance.ClearDomainEvents()
	return advance
}

func TestGormAdvancePaymentRepository_SaveAndFind(t *testing.T) {
	db := setupAdvanceTestDB(t)
	repo := NewGormAdvancePaymentRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	paidOn := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	advance := newTestAdvance(t, tenantID, nil, "5000", paidOn)

	require.NoError(t, repo.Save(ctx, advance))

	found, err := repo.FindByIDForTenant(ctx, tenantID, advance.ID)
	require.NoError(t, err)
	assert.Equal(t, advance.ID, found.ID)
	assert.Equal(t, trip.PartyRoleCompany, found.PayerRole)
	assert.Equal(t, trip.AdvanceScopeOverall, found.Scope)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(5000)))

	// Tenant scoping: another tenant must not see the record
	_, err = repo.FindByIDForTenant(ctx, uuid.New(), advance.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormAdvancePaymentRepository_SoftDeleteHidesRecord(t *testing.T) {
	db := setupAdvanceTestDB(t)
	repo := NewGormAdvancePaymentRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	advance := newTestAdvance(t, tenantID, nil, "1200", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, advance))

	require.NoError(t, advance.SoftDelete())
	advance.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, advance))

	_, err := repo.FindByIDForTenant(ctx, tenantID, advance.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	count, err := repo.CountForTenant(ctx, tenantID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGormAdvancePaymentRepository_FindByTrip(t *testing.T) {
	db := setupAdvanceTestDB(t)
	repo := NewGormAdvancePaymentRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	tripID := uuid.New()
	otherTripID := uuid.New()

	later := newTestAdvance(t, tenantID, &tripID, "3000", time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC))
	earlier := newTestAdvance(t, tenantID, &tripID, "2000", time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))
	unrelated := newTestAdvance(t, tenantID, &otherTripID, "999", time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC))

	for _, a := range []*trip.AdvancePayment{later, earlier, unrelated} {
		require.NoError(t, repo.Save(ctx, a))
	}

	advances, err := repo.FindByTrip(ctx, tenantID, tripID)
	require.NoError(t, err)
	require.Len(t, advances, 2)

	// Ordered by paid_on ascending
	assert.Equal(t, earlier.ID, advances[0].ID)
	assert.Equal(t, later.ID, advances[1].ID)
}

func TestGormAdvancePaymentRepository_FilterByPayerRole(t *testing.T) {
	db := setupAdvanceTestDB(t)
	repo := NewGormAdvancePaymentRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	companyPaid := newTestAdvance(t, tenantID, nil, "700", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, companyPaid))

	supplierPaid, err := trip.NewAdvancePayment(
		tenantID,
		trip.PartyRoleSupplier,
		trip.PartyRoleCompany,
		decimal.RequireFromString("800"),
		trip.AdvanceScopeOverall,
		nil,
		time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
		"",
	)
	require.NoError(t, err)
	supplierPaid.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, supplierPaid))

	filter := shared.DefaultFilter()
	filter.Filters["payer_role"] = "supplier"

	advances, err := repo.FindAllForTenant(ctx, tenantID, filter)
	require.NoError(t, err)
	require.Len(t, advances, 1)
	assert.Equal(t, supplierPaid.ID, advances[0].ID)
}
