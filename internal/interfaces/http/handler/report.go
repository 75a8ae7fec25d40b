package handler

import (
	"fmt"
	"net/http"

	reportapp "github.com/fleetledger/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles reporting API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
	exportService *reportapp.ExportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService, exportService *reportapp.ExportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
	}
}

// Financial godoc
// @Summary      Financial report
// @Description  Aggregate financial totals over a filtered trip set. Net profit is omitted for roles not entitled to see it.
// @Tags         reports
// @Produce      json
// @Param        query query reportapp.ReportQuery false "Report filter"
// @Success      200 {object} dto.Response{data=reportapp.FinancialReportResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/financial [get]
func (h *ReportHandler) Financial(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query reportapp.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.reportService.GetFinancialReport(c.Request.Context(), tenantID, getViewerRole(c), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Dashboard godoc
// @Summary      Dashboard statistics
// @Description  Overall totals, per-status counts and a monthly trend
// @Tags         reports
// @Produce      json
// @Param        query query reportapp.ReportQuery false "Report filter"
// @Success      200 {object} dto.Response{data=reportapp.DashboardStatsResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query reportapp.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.reportService.GetDashboardStats(c.Request.Context(), tenantID, getViewerRole(c), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Settlement godoc
// @Summary      Settlement balance
// @Description  Outstanding balance between trip totals for one party and the advances already paid. The balance may be negative.
// @Tags         reports
// @Produce      json
// @Param        query query reportapp.SettlementQuery false "Settlement filter"
// @Success      200 {object} dto.Response{data=reportapp.SettlementResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/settlement [get]
func (h *ReportHandler) Settlement(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query reportapp.SettlementQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.reportService.GetSettlement(c.Request.Context(), tenantID, query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Export godoc
// @Summary      Export financial report
// @Description  Download the filtered trip set as an xlsx workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        query query reportapp.ReportQuery false "Report filter"
// @Success      200 {file} binary
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/financial/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query reportapp.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	content, filename, err := h.exportService.ExportFinancialReport(c.Request.Context(), tenantID, getViewerRole(c), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}
