package handler

import (
	"context"

	tripapp "github.com/fleetledger/backend/internal/application/trip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TripHandler handles trip API endpoints
type TripHandler struct {
	BaseHandler
	tripService *tripapp.TripService
}

// NewTripHandler creates a new TripHandler
func NewTripHandler(tripService *tripapp.TripService) *TripHandler {
	return &TripHandler{
		tripService: tripService,
	}
}

// Create godoc
// @Summary      Create a new trip
// @Description  Record a trip with its rates and expenses; financials are computed on the server
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request body tripapp.CreateTripRequest true "Trip creation request"
// @Success      201 {object} dto.Response{data=tripapp.TripResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trips [post]
func (h *TripHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req tripapp.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	trip, err := h.tripService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, trip)
}

// List godoc
// @Summary      List trips
// @Description  List trips with filtering, search and pagination
// @Tags         trips
// @Produce      json
// @Param        filter query tripapp.TripListFilter false "List filter"
// @Success      200 {object} dto.Response{data=[]tripapp.TripResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trips [get]
func (h *TripHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter tripapp.TripListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	trips, total, err := h.tripService.List(c.Request.Context(), tenantID, filter)
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
	h.SuccessWithMeta(c, trips, total, page, pageSize)
}

// GetByID godoc
// @Summary      Get trip by ID
// @Tags         trips
// @Produce      json
// @Param        id path string true "Trip ID" format(uuid)
// @Success      200 {object} dto.Response{data=tripapp.TripResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trips/{id} [get]
func (h *TripHandler) GetByID(c *gin.Context) {
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

	trip, err := h.tripService.GetByID(c.Request.Context(), tenantID, tripID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, trip)
}

// GetByNumber godoc
// @Summary      Get trip by trip number
// @Tags         trips
// @Produce      json
// @Param        number path string true "Trip number"
// @Success      200 {object} dto.Response{data=tripapp.TripResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trips/number/{number} [get]
func (h *TripHandler) GetByNumber(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	trip, err := h.tripService.GetByTripNumber(c.Request.Context(), tenantID, c.Param("number"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, trip)
}

// Update godoc
// @Summary      Update a trip
// @Description  Partially update a trip; financials are recomputed and the update is rejected on a version conflict
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        id path string true "Trip ID" format(uuid)
// @Param        request body tripapp.UpdateTripRequest true "Trip update request"
// @Success      200 {object} dto.Response{data=tripapp.TripResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trips/{id} [put]
func (h *TripHandler) Update(c *gin.Context) {
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

	var req tripapp.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	trip, err := h.tripService.Update(c.Request.Context(), tenantID, tripID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, trip)
}

// Recalculate godoc
// @Summary      Recalculate trip financials
// @Description  Recompute and persist the financial snapshot from current rates and expenses
// @Tags         trips
// @Produce      json
// @Param        id path string true "Trip ID" format(uuid)
// @Success      200 {object} dto.Response{data=tripapp.RecalculateResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trips/{id}/recalculate [post]
func (h *TripHandler) Recalculate(c *gin.Context) {
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

	result, err := h.tripService.Recalculate(c.Request.Context(), tenantID, tripID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Start godoc
// @Summary      Start a trip
// @Tags         trips
// @Produce      json
// @Param        id path string true "Trip ID" format(uuid)
// @Success      200 {object} dto.Response{data=tripapp.TripResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trips/{id}/start [post]
func (h *TripHandler) Start(c *gin.Context) {
	h.transition(c, h.tripService.Start)
}

// Complete godoc
// @Summary      Complete a trip
// @Tags         trips
// @Produce      json
// @Param        id path string true "Trip ID" format(uuid)
// @Success      200 {object} dto.Response{data=tripapp.TripResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trips/{id}/complete [post]
func (h *TripHandler) Complete(c *gin.Context) {
	h.transition(c, h.tripService.Complete)
}

// Cancel godoc
// @Summary      Cancel a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        id path string true "Trip ID" format(uuid)
// @Param        request body tripapp.CancelTripRequest false "Cancel request"
// @Success      200 {object} dto.Response{data=tripapp.TripResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trips/{id}/cancel [post]
func (h *TripHandler) Cancel(c *gin.Context) {
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

	var req tripapp.CancelTripRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BindingError(c, err)
			return
		}
	}

	trip, err := h.tripService.Cancel(c.Request.Context(), tenantID, tripID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, trip)
}

// Delete godoc
// @Summary      Delete a trip
// @Description  Soft-deletes the trip; it no longer appears in lists or reports
// @Tags         trips
// @Produce      json
// @Param        id path string true "Trip ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trips/{id} [delete]
func (h *TripHandler) Delete(c *gin.Context) {
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

	if err := h.tripService.Delete(c.Request.Context(), tenantID, tripID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

type tripTransition func(ctx context.Context, tenantID, tripID uuid.UUID) (*tripapp.TripResponse, error)

func (h *TripHandler) transition(c *gin.Context, fn tripTransition) {
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

	trip, err := fn(c.Request.Context(), tenantID, tripID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, trip)
}
