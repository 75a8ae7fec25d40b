package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fleetledger/backend/internal/domain/report"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/domain/trip"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExportService renders financial reports as downloadable Excel workbooks.
// It reuses the report service so the redaction rules applied to the JSON
// report apply identically to the exported file.
type ExportService struct {
	reportService *ReportService
	tripRepo      trip.TripRepository
	logger        *zap.Logger
}

// NewExportService creates a new ExportService
func NewExportService(reportService *ReportService, tripRepo trip.TripRepository, logger *zap.Logger) *ExportService {
	return &ExportService{
		reportService: reportService,
		tripRepo:      tripRepo,
		logger:        logger,
	}
}

const exportSheet = "Trips"

// ExportFinancialReport builds an xlsx workbook with one trip per row and a
// totals block. The net-profit columns are omitted entirely for viewer
// roles that may not see profit.
func (s *ExportService) ExportFinancialReport(ctx context.Context, tenantID uuid.UUID,
	viewerRole report.ViewerRole, query ReportQuery) ([]byte, string, error) {

	summary, err := s.reportService.GetFinancialReport(ctx, tenantID, viewerRole, query)
	if err != nil {
		return nil, "", err
	}

	filter, err := query.toDomainFilter(tenantID)
	if err != nil {
		return nil, "", err
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.PageSize = 10000
	domainFilter.OrderBy = "trip_date"
	domainFilter.OrderDir = "asc"
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}
	if filter.SupplierID != nil {
		domainFilter.Filters["supplier_id"] = *filter.SupplierID
	}
	if filter.CompanyID != nil {
		domainFilter.Filters["company_id"] = *filter.CompanyID
	}
	if filter.VehicleID != nil {
		domainFilter.Filters["vehicle_id"] = *filter.VehicleID
	}

	trips, err := s.tripRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	showProfit := viewerRole.CanViewNetProfit()

	headers := []string{"Trip Number", "Date", "Status", "Loading Point", "Unloading Point",
		"Tonnage", "For Company", "For Vehicle", "For Supplier"}
	if showProfit {
		headers = append(headers, "Profit")
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, header)
	}

	for i := range trips {
		t := &trips[i]
		row := i + 2
		f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), t.TripNumber)
		f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), t.TripDate.Format("2006-01-02"))
		f.SetCellValue(exportSheet, fmt.Sprintf("C%d", row), string(t.Status))
		f.SetCellValue(exportSheet, fmt.Sprintf("D%d", row), t.LoadingPoint)
		f.SetCellValue(exportSheet, fmt.Sprintf("E%d", row), t.UnloadingPoint)
		f.SetCellValue(exportSheet, fmt.Sprintf("F%d", row), t.Tonnage.InexactFloat64())
		f.SetCellValue(exportSheet, fmt.Sprintf("G%d", row), t.Financials.AmountForCompany.InexactFloat64())
		f.SetCellValue(exportSheet, fmt.Sprintf("H%d", row), t.Financials.AmountForVehicle.InexactFloat64())
		f.SetCellValue(exportSheet, fmt.Sprintf("I%d", row), t.Financials.AmountForSupplier.InexactFloat64())
		if showProfit {
			f.SetCellValue(exportSheet, fmt.Sprintf("J%d", row), t.Financials.Profit.InexactFloat64())
		}
	}

	totalsRow := len(trips) + 3
	f.SetCellValue(exportSheet, fmt.Sprintf("A%d", totalsRow), "Totals")
	f.SetCellValue(exportSheet, fmt.Sprintf("F%d", totalsRow), summary.TotalTonnage.InexactFloat64())
	f.SetCellValue(exportSheet, fmt.Sprintf("G%d", totalsRow), summary.TotalForCompany.InexactFloat64())
	f.SetCellValue(exportSheet, fmt.Sprintf("H%d", totalsRow), summary.TotalForVehicle.InexactFloat64())
	f.SetCellValue(exportSheet, fmt.Sprintf("I%d", totalsRow), summary.TotalForSupplier.InexactFloat64())
	if showProfit && summary.TotalNetProfit != nil {
		f.SetCellValue(exportSheet, fmt.Sprintf("J%d", totalsRow), summary.TotalNetProfit.InexactFloat64())
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("Failed to write report workbook", zap.Error(err))
		return nil, "", err
	}

	filename := "trip-report.xlsx"
	if query.StartDate != "" || query.EndDate != "" {
		filename = fmt.Sprintf("trip-report_%s_%s.xlsx", query.StartDate, query.EndDate)
	}
	return buf.Bytes(), filename, nil
}
