package handler

import (
	tripapp "github.com/fleetledger/backend/internal/application/trip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdvancePaymentHandler handles advance payment API endpoints
type AdvancePaymentHandler struct {
	BaseHandler
	advanceService *tripapp.AdvancePaymentService
}

// NewAdvancePaymentHandler creates a new AdvancePaymentHandler
func NewAdvancePaymentHandler(advanceService *tripapp.AdvancePaymentService) *AdvancePaymentHandler {
	return &AdvancePaymentHandler{
		advanceService: advanceService,
	}
}

// Create godoc
// @Summary      Record an advance payment
// @Description  Record an advance between two parties, either against a trip or overall
// @Tags         advance-payments
// @Accept       json
// @Produce      json
// @Param        request body tripapp.CreateAdvancePaymentRequest true "Advance payment request"
// @Success      201 {object} dto.Response{data=tripapp.AdvancePaymentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /advance-payments [post]
func (h *AdvancePaymentHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req tripapp.CreateAdvancePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	advance, err := h.advanceService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, advance)
}

// List godoc
// @Summary      List advance payments
// @Tags         advance-payments
// @Produce      json
// @Param        filter query tripapp.AdvancePaymentListFilter false "List filter"
// @Success      200 {object} dto.Response{data=[]tripapp.AdvancePaymentResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /advance-payments [get]
func (h *AdvancePaymentHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter tripapp.AdvancePaymentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	advances, total, err := h.advanceService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, advances, total, page, pageSize)
}

// GetByID godoc
// @Summary      Get advance payment by ID
// @Tags         advance-payments
// @Produce      json
// @Param        id path string true "Advance payment ID" format(uuid)
// @Success      200 {object} dto.Response{data=tripapp.AdvancePaymentResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /advance-payments/{id} [get]
func (h *AdvancePaymentHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	advanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid advance payment ID format")
		return
	}

	advance, err := h.advanceService.GetByID(c.Request.Context(), tenantID, advanceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, advance)
}

// ListByTrip godoc
// @Summary      List advances for a trip
// @Tags         advance-payments
// @Produce      json
// @Param        id path string true "Trip ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]tripapp.AdvancePaymentResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trips/{id}/advance-payments [get]
func (h *AdvancePaymentHandler) ListByTrip(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid trip ID format")
		return
	}

	advances, err := h.advanceService.ListByTrip(c.Request.Context(), tenantID, tripID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, advances)
}

// Delete godoc
// @Summary      Delete an advance payment
// @Description  Soft-deletes the advance; settlement totals no longer include it
// @Tags         advance-payments
// @Produce      json
// @Param        id path string true "Advance payment ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /advance-payments/{id} [delete]
func (h *AdvancePaymentHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	advanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid advance payment ID format")
		return
	}

	if err := h.advanceService.Delete(c.Request.Context(), tenantID, advanceID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
