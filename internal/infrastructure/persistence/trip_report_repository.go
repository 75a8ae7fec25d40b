package persistence

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormTripReportRepository implements TripReportRepository using GORM.
// All aggregation happens in SQL; soft-deleted rows never enter the sums.
type GormTripReportRepository struct {
	db *gorm.DB
}

// NewGormTripReportRepository creates a new GormTripReportRepository
func NewGormTripReportRepository(db *gorm.DB) *GormTripReportRepository {
	return &GormTripReportRepository{db: db}
}

// TripTotals sums the filtered trip set. An empty set scans as all zeros.
func (r *GormTripReportRepository) TripTotals(ctx context.Context, filter report.TripReportFilter) (*report.TripTotals, error) {
	type totalsResult struct {
		TripCount        int64
		TotalTonnage     decimal.Decimal
		TotalForCompany  decimal.Decimal
		TotalForVehicle  decimal.Decimal
		TotalForSupplier decimal.Decimal
		TotalNetProfit   decimal.Decimal
	}

	var result totalsResult
	query := r.applyTripFilter(ctx, filter).
		Select(`
			COUNT(*) as trip_count,
			COALESCE(SUM(tonnage), 0) as total_tonnage,
			COALESCE(SUM(amount_for_company), 0) as total_for_company,
			COALESCE(SUM(amount_for_vehicle), 0) as total_for_vehicle,
			COALESCE(SUM(amount_for_supplier), 0) as total_for_supplier,
			COALESCE(SUM(profit), 0) as total_net_profit
		`)

	if err := query.Scan(&result).Error; err != nil {
		return nil, err
	}

	return &report.TripTotals{
		TripCount:        result.TripCount,
		TotalTonnage:     result.TotalTonnage,
		TotalForCompany:  result.TotalForCompany,
		TotalForVehicle:  result.TotalForVehicle,
		TotalForSupplier: result.TotalForSupplier,
		TotalNetProfit:   result.TotalNetProfit,
	}, nil
}

// CountByStatus breaks the filtered trip set down by lifecycle state
func (r *GormTripReportRepository) CountByStatus(ctx context.Context, filter report.TripReportFilter) ([]report.StatusCount, error) {
	type statusResult struct {
		Status string
		Count  int64
	}

	var results []statusResult
	err := r.applyTripFilter(ctx, filter).
		Select("status, COUNT(*) as count").
		Group("status").
		Order("status ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make([]report.StatusCount, len(results))
	for i, row := range results {
		counts[i] = report.StatusCount{Status: row.Status, Count: row.Count}
	}
	return counts, nil
}

// MonthlyTrend groups the filtered trip set by calendar month,
// ordered (year, month) ascending
func (r *GormTripReportRepository) MonthlyTrend(ctx context.Context, filter report.TripReportFilter) ([]report.MonthlyTrend, error) {
	type trendResult struct {
		Year            int
		Month           int
		TripCount       int64
		TotalTonnage    decimal.Decimal
		TotalForCompany decimal.Decimal
		TotalNetProfit  decimal.Decimal
	}

	var results []trendResult
	err := r.applyTripFilter(ctx, filter).
		Select(`
			CAST(EXTRACT(YEAR FROM trip_date) AS INTEGER) as year,
			CAST(EXTRACT(MONTH FROM trip_date) AS INTEGER) as month,
			COUNT(*) as trip_count,
			COALESCE(SUM(tonnage), 0) as total_tonnage,
			COALESCE(SUM(amount_for_company), 0) as total_for_company,
			COALESCE(SUM(profit), 0) as total_net_profit
		`).
		Group("EXTRACT(YEAR FROM trip_date), EXTRACT(MONTH FROM trip_date)").
		Order("year ASC, month ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	trends := make([]report.MonthlyTrend, len(results))
	for i, row := range results {
		trends[i] = report.MonthlyTrend{
			Year:            row.Year,
			Month:           row.Month,
			TripCount:       row.TripCount,
			TotalTonnage:    row.TotalTonnage,
			TotalForCompany: row.TotalForCompany,
			TotalNetProfit:  row.TotalNetProfit,
		}
	}
	return trends, nil
}

// AdvanceTotal sums non-deleted advance payments in the filter window,
// restricted to the receiving party when the filter names one
func (r *GormTripReportRepository) AdvanceTotal(ctx context.Context, filter report.TripReportFilter) (decimal.Decimal, error) {
	type sumResult struct {
		Total decimal.Decimal
	}

	query := r.db.WithContext(ctx).
		Table("advance_payments").
		Where("tenant_id = ? AND deleted = false", filter.TenantID)

	if filter.Party != "" {
		query = query.Where("receiver_role = ?", filter.Party)
	}
	if filter.StartDate != nil {
		query = query.Where("paid_on >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("paid_on <= ?", *filter.EndDate)
	}

	var result sumResult
	if err := query.Select("COALESCE(SUM(amount), 0) as total").Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

func (r *GormTripReportRepository) applyTripFilter(ctx context.Context, filter report.TripReportFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Table("trips").
		Where("tenant_id = ? AND deleted = false", filter.TenantID)

	if filter.StartDate != nil {
		query = query.Where("trip_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("trip_date <= ?", *filter.EndDate)
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	return query
}

// Ensure GormTripReportRepository implements TripReportRepository
var _ report.TripReportRepository = (*GormTripReportRepository)(nil)
