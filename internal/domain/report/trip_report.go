package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TripReportFilter narrows a report query. TenantID is mandatory; every
// repository implementation must apply it to every statement. Soft-deleted
// trips and advances are always excluded.
type TripReportFilter struct {
	TenantID   uuid.UUID
	StartDate  *time.Time // inclusive
	EndDate    *time.Time // inclusive
	SupplierID *uuid.UUID
	CompanyID  *uuid.UUID
	VehicleID  *uuid.UUID

	// Party restricts AdvanceTotal to advances received by that role,
	// so both sides of a settlement cover the same party. Empty means
	// all advances. Trip aggregations ignore it.
	Party string
}

// TripTotals is the aggregate view over a filtered trip set.
// An empty result set yields a zero-valued TripTotals, not an error.
type TripTotals struct {
	TripCount         int64
	TotalTonnage      decimal.Decimal
	TotalForCompany   decimal.Decimal
	TotalForVehicle   decimal.Decimal
	TotalForSupplier  decimal.Decimal
	TotalNetProfit    decimal.Decimal
}

// StatusCount is the number of trips in one lifecycle state
type StatusCount struct {
	Status string
	Count  int64
}

// MonthlyTrend is one calendar-month row of the dashboard trend.
// Rows are ordered chronologically ascending (year, then month).
type MonthlyTrend struct {
	Year             int
	Month            int
	TripCount        int64
	TotalTonnage     decimal.Decimal
	TotalForCompany  decimal.Decimal
	TotalNetProfit   decimal.Decimal
}

// TripReportRepository aggregates persisted trips and advances for reporting.
// All methods are read-only and safe to call concurrently.
type TripReportRepository interface {
	// TripTotals sums the filtered trip set
	TripTotals(ctx context.Context, filter TripReportFilter) (*TripTotals, error)

	// CountByStatus breaks the filtered trip set down by lifecycle state
	CountByStatus(ctx context.Context, filter TripReportFilter) ([]StatusCount, error)

	// MonthlyTrend groups the filtered trip set by calendar month,
	// ordered (year, month) ascending
	MonthlyTrend(ctx context.Context, filter TripReportFilter) ([]MonthlyTrend, error)

	// AdvanceTotal sums non-deleted advance payments in the filter window
	AdvanceTotal(ctx context.Context, filter TripReportFilter) (decimal.Decimal, error)
}
