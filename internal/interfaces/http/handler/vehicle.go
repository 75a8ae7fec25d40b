package handler

import (
	partnerapp "github.com/fleetledger/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VehicleHandler handles vehicle API endpoints
type VehicleHandler struct {
	BaseHandler
	vehicleService *partnerapp.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(vehicleService *partnerapp.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// Create godoc
// @Summary      Register a new vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CreateVehicleRequest true "Vehicle registration request"
// @Success      201 {object} dto.Response{data=partnerapp.VehicleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req partnerapp.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, vehicle)
}

// List godoc
// @Summary      List vehicles
// @Tags         vehicles
// @Produce      json
// @Param        filter query partnerapp.PartnerListFilter false "List filter"
// @Success      200 {object} dto.Response{data=[]partnerapp.VehicleResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter partnerapp.PartnerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	vehicles, total, err := h.vehicleService.List(c.Request.Context(), tenantID, filter)
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
	h.SuccessWithMeta(c, vehicles, total, page, pageSize)
}

// GetByID godoc
// @Summary      Get vehicle by ID
// @Tags         vehicles
// @Produce      json
// @Param        id path string true "Vehicle ID" format(uuid)
// @Success      200 {object} dto.Response{data=partnerapp.VehicleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /vehicles/{id} [get]
func (h *VehicleHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), tenantID, vehicleID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicle)
}

// GetByRegistration godoc
// @Summary      Get vehicle by registration number
// @Tags         vehicles
// @Produce      json
// @Param        registration path string true "Registration number"
// @Success      200 {object} dto.Response{data=partnerapp.VehicleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /vehicles/registration/{registration} [get]
func (h *VehicleHandler) GetByRegistration(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	vehicle, err := h.vehicleService.GetByRegistration(c.Request.Context(), tenantID, c.Param("registration"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicle)
}

// Update godoc
// @Summary      Update a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        id path string true "Vehicle ID" format(uuid)
// @Param        request body partnerapp.UpdateVehicleRequest true "Vehicle update request"
// @Success      200 {object} dto.Response{data=partnerapp.VehicleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	var req partnerapp.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), tenantID, vehicleID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicle)
}

// Activate godoc
// @Summary      Activate a vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id path string true "Vehicle ID" format(uuid)
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /vehicles/{id}/activate [post]
func (h *VehicleHandler) Activate(c *gin.Context) {
	h.statusChange(c, h.vehicleService.Activate)
}

// Deactivate godoc
// @Summary      Deactivate a vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id path string true "Vehicle ID" format(uuid)
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /vehicles/{id}/deactivate [post]
func (h *VehicleHandler) Deactivate(c *gin.Context) {
	h.statusChange(c, h.vehicleService.Deactivate)
}

// MarkMaintenance godoc
// @Summary      Mark a vehicle as under maintenance
// @Tags         vehicles
// @Produce      json
// @Param        id path string true "Vehicle ID" format(uuid)
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /vehicles/{id}/maintenance [post]
func (h *VehicleHandler) MarkMaintenance(c *gin.Context) {
	h.statusChange(c, h.vehicleService.MarkUnderMaintenance)
}

// Delete godoc
// @Summary      Delete a vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id path string true "Vehicle ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), tenantID, vehicleID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *VehicleHandler) statusChange(c *gin.Context, fn statusChangeFunc) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	if err := fn(c.Request.Context(), tenantID, vehicleID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "status updated"})
}
