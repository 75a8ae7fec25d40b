package report

import (
	"time"

	"github.com/fleetledger/backend/internal/domain/report"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportQuery carries the common report filters as they arrive from the
// HTTP layer. Dates are inclusive calendar days in 2006-01-02 form.
type ReportQuery struct {
	StartDate  string     `form:"start_date"`
	EndDate    string     `form:"end_date"`
	SupplierID *uuid.UUID `form:"supplier_id"`
	CompanyID  *uuid.UUID `form:"company_id"`
	VehicleID  *uuid.UUID `form:"vehicle_id"`
}

const reportDateLayout = "2006-01-02"

// toDomainFilter parses the query into a domain filter. Malformed dates are
// rejected before any store access.
func (q ReportQuery) toDomainFilter(tenantID uuid.UUID) (report.TripReportFilter, error) {
	filter := report.TripReportFilter{
		TenantID:   tenantID,
		SupplierID: q.SupplierID,
		CompanyID:  q.CompanyID,
		VehicleID:  q.VehicleID,
	}
	if q.StartDate != "" {
		start, err := time.Parse(reportDateLayout, q.StartDate)
		if err != nil {
			return filter, shared.NewDomainError("INVALID_ARGUMENT", "Start date must be in YYYY-MM-DD form")
		}
		filter.StartDate = &start
	}
	if q.EndDate != "" {
		end, err := time.Parse(reportDateLayout, q.EndDate)
		if err != nil {
			return filter, shared.NewDomainError("INVALID_ARGUMENT", "End date must be in YYYY-MM-DD form")
		}
		// Inclusive end of day
		end = end.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return filter, shared.NewDomainError("INVALID_ARGUMENT", "End date cannot precede start date")
	}
	return filter, nil
}

// StatusCountResponse is one per-status row of a report
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// FinancialReportResponse is the aggregate financial view of a trip set.
// TotalNetProfit is nulled server-side for viewer roles that may not see it.
type FinancialReportResponse struct {
	TripCount        int64                 `json:"trip_count"`
	TotalTonnage     decimal.Decimal       `json:"total_tonnage"`
	TotalForCompany  decimal.Decimal       `json:"total_for_company"`
	TotalForVehicle  decimal.Decimal       `json:"total_for_vehicle"`
	TotalForSupplier decimal.Decimal       `json:"total_for_supplier"`
	TotalNetProfit   *decimal.Decimal      `json:"total_net_profit"`
	StatusCounts     []StatusCountResponse `json:"status_counts"`
}

// MonthlyTrendResponse is one calendar-month row of the dashboard trend.
// TotalNetProfit follows the same redaction rule as the report totals.
type MonthlyTrendResponse struct {
	Year            int              `json:"year"`
	Month           int              `json:"month"`
	TripCount       int64            `json:"trip_count"`
	TotalTonnage    decimal.Decimal  `json:"total_tonnage"`
	TotalForCompany decimal.Decimal  `json:"total_for_company"`
	TotalNetProfit  *decimal.Decimal `json:"total_net_profit"`
}

// DashboardStatsResponse is the dashboard aggregate
type DashboardStatsResponse struct {
	Totals       FinancialReportResponse `json:"totals"`
	MonthlyTrend []MonthlyTrendResponse  `json:"monthly_trend"`
}

// SettlementQuery selects the settlement party and window
type SettlementQuery struct {
	ReportQuery
	Party string `form:"party" binding:"omitempty,oneof=supplier company vehicle"`
}

// SettlementResponse is the outstanding-balance view
type SettlementResponse struct {
	Party        string          `json:"party"`
	TripTotal    decimal.Decimal `json:"trip_total"`
	AdvanceTotal decimal.Decimal `json:"advance_total"`
	Balance      decimal.Decimal `json:"balance"`
}
