package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates vehicle with valid input", func(t *testing.T) {
		vehicle, err := NewVehicle(tenantID, "cg04ab1234", "Ramesh Transport", VehicleTypeTruck)
		require.NoError(t, err)
		require.NotNil(t, vehicle)

		assert.NotEqual(t, uuid.Nil, vehicle.ID)
		assert.Equal(t, tenantID, vehicle.TenantID)
		assert.Equal(t, "CG04AB1234", vehicle.RegistrationNumber)
		assert.Equal(t, "Ramesh Transport", vehicle.OwnerName)
		assert.Equal(t, VehicleTypeTruck, vehicle.Type)
		assert.Equal(t, VehicleStatusActive, vehicle.Status)
		assert.True(t, vehicle.CapacityTons.IsZero())

		events := vehicle.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeVehicleCreated, events[0].EventType())
	})

	t.Run("fails with empty registration", func(t *testing.T) {
		vehicle, err := NewVehicle(tenantID, "", "Owner", VehicleTypeTruck)
		assert.Nil(t, vehicle)
		assert.Error(t, err)
	})

	t.Run("fails with malformed registration", func(t *testing.T) {
		vehicle, err := NewVehicle(tenantID, "NOT-A-PLATE!", "Owner", VehicleTypeTruck)
		assert.Nil(t, vehicle)
		assert.Error(t, err)
	})

	t.Run("fails with invalid type", func(t *testing.T) {
		vehicle, err := NewVehicle(tenantID, "CG04AB1234", "Owner", VehicleType("bicycle"))
		assert.Nil(t, vehicle)
		assert.Error(t, err)
	})
}

func TestVehicle_SetCapacity(t *testing.T) {
	vehicle, err := NewVehicle(uuid.New(), "MH12DE4567", "Owner", VehicleTypeTipper)
	require.NoError(t, err)

	require.NoError(t, vehicle.SetCapacity(decimal.RequireFromString("25.5")))
	assert.True(t, vehicle.CapacityTons.Equal(decimal.RequireFromString("25.5")))

	assert.Error(t, vehicle.SetCapacity(decimal.RequireFromString("-1")))
}

func TestVehicle_StatusChanges(t *testing.T) {
	vehicle, err := NewVehicle(uuid.New(), "MH12DE4567", "Owner", VehicleTypeTruck)
	require.NoError(t, err)

	vehicle.MarkUnderMaintenance()
	assert.Equal(t, VehicleStatusMaintenance, vehicle.Status)
	assert.False(t, vehicle.IsActive())

	vehicle.Activate()
	assert.True(t, vehicle.IsActive())
}

func TestSupplier_TaxInfo(t *testing.T) {
	supplier, err := NewSupplier(uuid.New(), "SUP001", "Gupta Minerals")
	require.NoError(t, err)

	t.Run("accepts valid GST and PAN", func(t *testing.T) {
		err := supplier.SetTaxInfo("22AAAAA0000A1Z5", "AAAAA0000A")
		require.NoError(t, err)
		assert.Equal(t, "22AAAAA0000A1Z5", supplier.GSTNumber)
		assert.Equal(t, "AAAAA0000A", supplier.PANNumber)
	})

	t.Run("rejects malformed GST", func(t *testing.T) {
		assert.Error(t, supplier.SetTaxInfo("INVALID", ""))
	})

	t.Run("rejects malformed PAN", func(t *testing.T) {
		assert.Error(t, supplier.SetTaxInfo("", "123"))
	})
}

func TestNewCompany(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates company and uppercases code", func(t *testing.T) {
		company, err := NewCompany(tenantID, "acc01", "Ambuja Cement")
		require.NoError(t, err)
		assert.Equal(t, "ACC01", company.Code)
		assert.Equal(t, CompanyStatusActive, company.Status)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		company, err := NewCompany(tenantID, "ACC01", "")
		assert.Nil(t, company)
		assert.Error(t, err)
	})

	t.Run("rejects negative credit limit", func(t *testing.T) {
		company, err := NewCompany(tenantID, "ACC01", "Ambuja Cement")
		require.NoError(t, err)
		assert.Error(t, company.SetCreditLimit(decimal.RequireFromString("-100")))
	})
}
