package trip

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrip(t *testing.T) *Trip {
	t.Helper()
	tenantID := uuid.New()
	rates := RateTable{
		CompanyRatePerTon: d("1000"),
		VehicleRatePerTon: d("800"),
	}
	tr, err := NewTrip(tenantID, "TRIP001", uuid.New(), uuid.New(), uuid.New(),
		time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		"Raipur", "Vizag", d("10"), rates, ExpenseTable{})
	require.NoError(t, err)
	return tr
}

func TestNewTrip(t *testing.T) {
	t.Run("creates trip with derived snapshot", func(t *testing.T) {
		tr := newTestTrip(t)

		assert.NotEqual(t, uuid.Nil, tr.ID)
		assert.Equal(t, "TRIP001", tr.TripNumber)
		assert.Equal(t, TripStatusPending, tr.Status)
		assert.True(t, tr.Active)
		assert.False(t, tr.Deleted)
		assert.True(t, tr.Financials.AmountForCompany.Equal(d("10000")))
		assert.True(t, tr.Financials.AmountForVehicle.Equal(d("8000")))
		assert.True(t, tr.Financials.Profit.Equal(d("2000")))

		events := tr.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeTripCreated, events[0].EventType())
	})

	t.Run("converts trip number to uppercase", func(t *testing.T) {
		tr, err := NewTrip(uuid.New(), "trip042", uuid.New(), uuid.New(), uuid.New(),
			time.Now(), "A", "B", d("1"), RateTable{}, ExpenseTable{})
		require.NoError(t, err)
		assert.Equal(t, "TRIP042", tr.TripNumber)
	})

	t.Run("fails with empty trip number", func(t *testing.T) {
		tr, err := NewTrip(uuid.New(), "", uuid.New(), uuid.New(), uuid.New(),
			time.Now(), "A", "B", d("1"), RateTable{}, ExpenseTable{})
		assert.Nil(t, tr)
		assert.Error(t, err)
	})

	t.Run("fails with nil references", func(t *testing.T) {
		tr, err := NewTrip(uuid.New(), "TRIP001", uuid.Nil, uuid.New(), uuid.New(),
			time.Now(), "A", "B", d("1"), RateTable{}, ExpenseTable{})
		assert.Nil(t, tr)
		assert.Error(t, err)
	})

	t.Run("fails with negative tonnage", func(t *testing.T) {
		tr, err := NewTrip(uuid.New(), "TRIP001", uuid.New(), uuid.New(), uuid.New(),
			time.Now(), "A", "B", d("-5"), RateTable{}, ExpenseTable{})
		assert.Nil(t, tr)
		assert.Error(t, err)
	})

	t.Run("fails with zero trip date", func(t *testing.T) {
		tr, err := NewTrip(uuid.New(), "TRIP001", uuid.New(), uuid.New(), uuid.New(),
			time.Time{}, "A", "B", d("1"), RateTable{}, ExpenseTable{})
		assert.Nil(t, tr)
		assert.Error(t, err)
	})
}

func TestTrip_SetTonnage(t *testing.T) {
	t.Run("recomputes snapshot from scratch", func(t *testing.T) {
		tr := newTestTrip(t)

		err := tr.SetTonnage(d("20"))
		require.NoError(t, err)

		assert.True(t, tr.Financials.AmountForCompany.Equal(d("20000")))
		assert.True(t, tr.Financials.AmountForVehicle.Equal(d("16000")))
		assert.True(t, tr.Financials.Profit.Equal(d("4000")))
	})

	t.Run("rejects negative tonnage without touching snapshot", func(t *testing.T) {
		tr := newTestTrip(t)

		err := tr.SetTonnage(d("-1"))
		assert.Error(t, err)
		assert.True(t, tr.Tonnage.Equal(d("10")))
		assert.True(t, tr.Financials.Profit.Equal(d("2000")))
	})
}

func TestTrip_SetExpenses(t *testing.T) {
	tr := newTestTrip(t)

	err := tr.SetExpenses(ExpenseTable{Company: PayerExpenses{Diesel: d("500")}})
	require.NoError(t, err)

	assert.True(t, tr.Financials.Profit.Equal(d("1500")))
}

func TestTrip_SetRates(t *testing.T) {
	tr := newTestTrip(t)

	err := tr.SetRates(RateTable{CompanyRatePerTon: d("1100"), VehicleRatePerTon: d("800")})
	require.NoError(t, err)

	assert.True(t, tr.Financials.AmountForCompany.Equal(d("11000")))
	assert.True(t, tr.Financials.Profit.Equal(d("3000")))
}

func TestTrip_Recalculate(t *testing.T) {
	tr := newTestTrip(t)
	// Simulate a stale snapshot
	tr.Financials = Financials{}

	profit, err := tr.Recalculate()
	require.NoError(t, err)

	assert.True(t, profit.Equal(d("2000")))
	assert.True(t, tr.Financials.AmountForCompany.Equal(d("10000")))
}

func TestTrip_StatusTransitions(t *testing.T) {
	t.Run("pending to running to completed", func(t *testing.T) {
		tr := newTestTrip(t)

		require.NoError(t, tr.Start())
		assert.Equal(t, TripStatusRunning, tr.Status)

		require.NoError(t, tr.Complete())
		assert.Equal(t, TripStatusCompleted, tr.Status)
	})

	t.Run("cannot complete a pending trip", func(t *testing.T) {
		tr := newTestTrip(t)
		assert.Error(t, tr.Complete())
	})

	t.Run("cancel records the reason", func(t *testing.T) {
		tr := newTestTrip(t)

		require.NoError(t, tr.Cancel("no load available"))
		assert.Equal(t, TripStatusCancelled, tr.Status)
		assert.Equal(t, "no load available", tr.CancelReason)
	})

	t.Run("terminal states cannot transition", func(t *testing.T) {
		tr := newTestTrip(t)
		require.NoError(t, tr.Cancel(""))
		assert.Error(t, tr.Start())
	})
}

func TestTrip_SoftDelete(t *testing.T) {
	tr := newTestTrip(t)

	require.NoError(t, tr.SoftDelete())

	assert.True(t, tr.Deleted)
	assert.False(t, tr.Active)
	require.NotNil(t, tr.DeletedAt)

	// Deleting twice is an error
	assert.Error(t, tr.SoftDelete())
}
