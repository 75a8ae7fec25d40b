package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fleetledger/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockTripReportRepository(t *testing.T) (*GormTripReportRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormTripReportRepository(gormDB), mock, mockDB
}

func TestGormTripReportRepository_TripTotals(t *testing.T) {
	t.Run("sums the filtered trip set", func(t *testing.T) {
		repo, mock, mockDB := newMockTripReportRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		rows := sqlmock.NewRows([]string{
			"trip_count", "total_tonnage", "total_for_company",
			"total_for_vehicle", "total_for_supplier", "total_net_profit",
		}).AddRow(12, "240", "240000", "192000", "24000", "41500")

		mock.ExpectQuery(`SELECT .*COUNT\(\*\) as trip_count.* FROM "?trips"?`).
			WithArgs(tenantID).
			WillReturnRows(rows)

		totals, err := repo.TripTotals(context.Background(), report.TripReportFilter{TenantID: tenantID})

		require.NoError(t, err)
		assert.Equal(t, int64(12), totals.TripCount)
		assert.True(t, decimal.NewFromInt(41500).Equal(totals.TotalNetProfit))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty set scans as zeros", func(t *testing.T) {
		repo, mock, mockDB := newMockTripReportRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		rows := sqlmock.NewRows([]string{
			"trip_count", "total_tonnage", "total_for_company",
			"total_for_vehicle", "total_for_supplier", "total_net_profit",
		}).AddRow(0, "0", "0", "0", "0", "0")

		mock.ExpectQuery(`SELECT .*COUNT\(\*\) as trip_count.* FROM "?trips"?`).
			WithArgs(tenantID).
			WillReturnRows(rows)

		totals, err := repo.TripTotals(context.Background(), report.TripReportFilter{TenantID: tenantID})

		require.NoError(t, err)
		assert.Equal(t, int64(0), totals.TripCount)
		assert.True(t, totals.TotalNetProfit.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTripReportRepository_MonthlyTrend(t *testing.T) {
	t.Run("returns rows ordered by year then month", func(t *testing.T) {
		repo, mock, mockDB := newMockTripReportRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		start := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{
			"year", "month", "trip_count", "total_tonnage", "total_for_company", "total_net_profit",
		}).
			AddRow(2024, 11, 3, "60", "60000", "9000").
			AddRow(2024, 12, 5, "100", "100000", "15000").
			AddRow(2025, 1, 4, "80", "80000", "12000")

		mock.ExpectQuery(`SELECT .*EXTRACT\(YEAR FROM trip_date\).* FROM "?trips"?`).
			WithArgs(tenantID, start).
			WillReturnRows(rows)

		trend, err := repo.MonthlyTrend(context.Background(), report.TripReportFilter{
			TenantID:  tenantID,
			StartDate: &start,
		})

		require.NoError(t, err)
		require.Len(t, trend, 3)
		assert.Equal(t, 2024, trend[0].Year)
		assert.Equal(t, 11, trend[0].Month)
		assert.Equal(t, 2025, trend[2].Year)
		assert.Equal(t, 1, trend[2].Month)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTripReportRepository_AdvanceTotal(t *testing.T) {
	t.Run("sums advances in the window", func(t *testing.T) {
		repo, mock, mockDB := newMockTripReportRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) as total FROM "?advance_payments"?`).
			WithArgs(tenantID).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("30000"))

		total, err := repo.AdvanceTotal(context.Background(), report.TripReportFilter{TenantID: tenantID})

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(30000).Equal(total))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("restricts to the receiving party when set", func(t *testing.T) {
		repo, mock, mockDB := newMockTripReportRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) as total FROM "?advance_payments"? WHERE .*receiver_role = \$2`).
			WithArgs(tenantID, "supplier").
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("4000"))

		total, err := repo.AdvanceTotal(context.Background(), report.TripReportFilter{
			TenantID: tenantID,
			Party:    "supplier",
		})

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(4000).Equal(total))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
