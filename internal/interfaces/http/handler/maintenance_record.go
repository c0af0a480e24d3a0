package handler

import (
	"github.com/gin-gonic/gin"

	maintenanceapp "github.com/fleetcare/backend/internal/application/maintenance"
)

// MaintenanceRecordHandler handles maintenance history endpoints
type MaintenanceRecordHandler struct {
	BaseHandler
	recordService *maintenanceapp.MaintenanceRecordService
}

// NewMaintenanceRecordHandler creates a new MaintenanceRecordHandler
func NewMaintenanceRecordHandler(recordService *maintenanceapp.MaintenanceRecordService) *MaintenanceRecordHandler {
	return &MaintenanceRecordHandler{recordService: recordService}
}

// Create logs performed maintenance against a rule
func (h *MaintenanceRecordHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req maintenanceapp.CreateMaintenanceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.recordService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, record)
}

// GetByID retrieves a record by its ID
func (h *MaintenanceRecordHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid record ID format")
		return
	}

	record, err := h.recordService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// ListByVehicle returns a vehicle's maintenance history, newest first
func (h *MaintenanceRecordHandler) ListByVehicle(c *gin.Context) {
	vehicleID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	records, err := h.recordService.ListByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, records)
}

// Delete removes a record from the history
func (h *MaintenanceRecordHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid record ID format")
		return
	}

	if err := h.recordService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
