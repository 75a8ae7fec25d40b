package trip

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvancePayment(t *testing.T) {
	tenantID := uuid.New()
	paidOn := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates overall advance", func(t *testing.T) {
		adv, err := NewAdvancePayment(tenantID, PartyRoleCompany, PartyRoleVehicle,
			d("5000"), AdvanceScopeOverall, nil, paidOn, "fuel advance")
		require.NoError(t, err)

		assert.Equal(t, tenantID, adv.TenantID)
		assert.Equal(t, PartyRoleCompany, adv.PayerRole)
		assert.Equal(t, PartyRoleVehicle, adv.ReceiverRole)
		assert.True(t, adv.Amount.Equal(d("5000")))
		assert.Nil(t, adv.TripID)
		assert.False(t, adv.Deleted)

		events := adv.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeAdvancePaymentCreated, events[0].EventType())
	})

	t.Run("creates trip-scoped advance", func(t *testing.T) {
		tripID := uuid.New()
		adv, err := NewAdvancePayment(tenantID, PartyRoleSupplier, PartyRoleCompany,
			d("1200.50"), AdvanceScopeTrip, &tripID, paidOn, "")
		require.NoError(t, err)
		require.NotNil(t, adv.TripID)
		assert.Equal(t, tripID, *adv.TripID)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewAdvancePayment(tenantID, PartyRoleCompany, PartyRoleVehicle,
			d("0"), AdvanceScopeOverall, nil, paidOn, "")
		assert.Error(t, err)

		_, err = NewAdvancePayment(tenantID, PartyRoleCompany, PartyRoleVehicle,
			d("-10"), AdvanceScopeOverall, nil, paidOn, "")
		assert.Error(t, err)
	})

	t.Run("rejects same payer and receiver", func(t *testing.T) {
		_, err := NewAdvancePayment(tenantID, PartyRoleCompany, PartyRoleCompany,
			d("100"), AdvanceScopeOverall, nil, paidOn, "")
		assert.Error(t, err)
	})

	t.Run("trip scope requires a trip reference", func(t *testing.T) {
		_, err := NewAdvancePayment(tenantID, PartyRoleCompany, PartyRoleVehicle,
			d("100"), AdvanceScopeTrip, nil, paidOn, "")
		assert.Error(t, err)
	})

	t.Run("overall scope rejects a trip reference", func(t *testing.T) {
		tripID := uuid.New()
		_, err := NewAdvancePayment(tenantID, PartyRoleCompany, PartyRoleVehicle,
			d("100"), AdvanceScopeOverall, &tripID, paidOn, "")
		assert.Error(t, err)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		_, err := NewAdvancePayment(tenantID, PartyRole("driver"), PartyRoleVehicle,
			d("100"), AdvanceScopeOverall, nil, paidOn, "")
		assert.Error(t, err)
	})
}

func TestAdvancePayment_SoftDelete(t *testing.T) {
	adv, err := NewAdvancePayment(uuid.New(), PartyRoleCompany, PartyRoleVehicle,
		d("100"), AdvanceScopeOverall, nil, time.Now(), "")
	require.NoError(t, err)

	require.NoError(t, adv.SoftDelete())
	assert.True(t, adv.Deleted)
	require.NotNil(t, adv.DeletedAt)
	assert.Error(t, adv.SoftDelete())
}
