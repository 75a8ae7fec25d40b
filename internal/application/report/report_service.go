package report

import (
	"context"
	"time"

	"github.com/fleetledger/backend/internal/domain/report"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportService aggregates persisted trips and advances into read models.
// All operations are read-only; callers may invoke them concurrently.
type ReportService struct {
	reportRepo report.TripReportRepository
	logger     *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo report.TripReportRepository, logger *zap.Logger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// GetFinancialReport sums the filtered trip set for one tenant. The net
// profit figure leaves the server only for roles entitled to it; for every
// other role the field is nulled here, not in the client.
func (s *ReportService) GetFinancialReport(ctx context.Context, tenantID uuid.UUID,
	viewerRole report.ViewerRole, query ReportQuery) (*FinancialReportResponse, error) {

	filter, err := query.toDomainFilter(tenantID)
	if err != nil {
		return nil, err
	}

	totals, err := s.reportRepo.TripTotals(ctx, filter)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.reportRepo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := toFinancialReportResponse(totals, statusCounts, viewerRole)
	return &response, nil
}

// GetDashboardStats returns the dashboard aggregate: overall totals, the
// per-status breakdown and a monthly trend covering the last six calendar
// months when no explicit window is given.
func (s *ReportService) GetDashboardStats(ctx context.Context, tenantID uuid.UUID,
	viewerRole report.ViewerRole, query ReportQuery) (*DashboardStatsResponse, error) {

	filter, err := query.toDomainFilter(tenantID)
	if err != nil {
		return nil, err
	}

	trendFilter := filter
	if trendFilter.StartDate == nil {
		start := startOfMonth(time.Now()).AddDate(0, -5, 0)
		trendFilter.StartDate = &start
	}

	totals, err := s.reportRepo.TripTotals(ctx, filter)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.reportRepo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}

	trend, err := s.reportRepo.MonthlyTrend(ctx, trendFilter)
	if err != nil {
		return nil, err
	}

	trendResponses := make([]MonthlyTrendResponse, len(trend))
	for i, row := range trend {
		trendResponses[i] = MonthlyTrendResponse{
			Year:            row.Year,
			Month:           row.Month,
			TripCount:       row.TripCount,
			TotalTonnage:    row.TotalTonnage,
			TotalForCompany: row.TotalForCompany,
		}
		if viewerRole.CanViewNetProfit() {
			profit := row.TotalNetProfit
			trendResponses[i].TotalNetProfit = &profit
		}
	}

	return &DashboardStatsResponse{
		Totals:       toFinancialReportResponse(totals, statusCounts, viewerRole),
		MonthlyTrend: trendResponses,
	}, nil
}

// GetSettlement computes the outstanding balance between the filtered trip
// totals for one party and the advances that party received in the same
// window. The balance may be negative when advances exceed the trip total.
func (s *ReportService) GetSettlement(ctx context.Context, tenantID uuid.UUID,
	query SettlementQuery) (*SettlementResponse, error) {

	filter, err := query.toDomainFilter(tenantID)
	if err != nil {
		return nil, err
	}

	party := query.Party
	if party == "" {
		party = "company"
	}
	filter.Party = party

	totals, err := s.reportRepo.TripTotals(ctx, filter)
	if err != nil {
		return nil, err
	}

	advanceTotal, err := s.reportRepo.AdvanceTotal(ctx, filter)
	if err != nil {
		return nil, err
	}

	tripTotal := totals.TotalForCompany
	switch party {
	case "supplier":
		tripTotal = totals.TotalForSupplier
	case "vehicle":
		tripTotal = totals.TotalForVehicle
	}

	settlement := report.CalculateSettlement(tripTotal, advanceTotal)
	return &SettlementResponse{
		Party:        party,
		TripTotal:    settlement.TripTotal,
		AdvanceTotal: settlement.AdvanceTotal,
		Balance:      settlement.Balance,
	}, nil
}

func toFinancialReportResponse(totals *report.TripTotals, statusCounts []report.StatusCount,
	viewerRole report.ViewerRole) FinancialReportResponse {

	counts := make([]StatusCountResponse, len(statusCounts))
	for i, sc := range statusCounts {
		counts[i] = StatusCountResponse{Status: sc.Status, Count: sc.Count}
	}

	response := FinancialReportResponse{
		TripCount:        totals.TripCount,
		TotalTonnage:     totals.TotalTonnage,
		TotalForCompany:  totals.TotalForCompany,
		TotalForVehicle:  totals.TotalForVehicle,
		TotalForSupplier: totals.TotalForSupplier,
		StatusCounts:     counts,
	}
	if viewerRole.CanViewNetProfit() {
		profit := totals.TotalNetProfit
		response.TotalNetProfit = &profit
	}
	return response
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
