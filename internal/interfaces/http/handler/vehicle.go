package handler

import (
	"github.com/gin-gonic/gin"

	fleetapp "github.com/fleetcare/backend/internal/application/fleet"
	"github.com/fleetcare/backend/internal/interfaces/http/dto"
)

// VehicleHandler handles vehicle API endpoints
type VehicleHandler struct {
	BaseHandler
	vehicleService *fleetapp.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(vehicleService *fleetapp.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// Register registers a new vehicle in the fleet
func (h *VehicleHandler) Register(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req fleetapp.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.vehicleService.Register(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, vehicle)
}

// GetByID retrieves a vehicle by its ID
func (h *VehicleHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicle)
}

// List returns a filtered, paginated page of vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	var req fleetapp.VehicleListFilter
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.vehicleService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, dto.Meta{
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	})
}

// Update updates a vehicle's mutable fields
func (h *VehicleHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	var req fleetapp.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicle)
}

// Delete removes a vehicle from the fleet
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ReportStatus records a status snapshot for a vehicle
func (h *VehicleHandler) ReportStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	vehicleID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	var req fleetapp.ReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status, err := h.vehicleService.ReportStatus(c.Request.Context(), userID, vehicleID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, status)
}

// GetLatestStatus returns the most recent status snapshot of a vehicle
func (h *VehicleHandler) GetLatestStatus(c *gin.Context) {
	vehicleID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	status, err := h.vehicleService.GetLatestStatus(c.Request.Context(), vehicleID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, status)
}
