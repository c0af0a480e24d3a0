package handler

import (
	"github.com/gin-gonic/gin"

	maintenanceapp "github.com/fleetcare/backend/internal/application/maintenance"
)

// MaintenanceRuleHandler handles maintenance scheduling endpoints
type MaintenanceRuleHandler struct {
	BaseHandler
	ruleService *maintenanceapp.MaintenanceRuleService
}

// NewMaintenanceRuleHandler creates a new MaintenanceRuleHandler
func NewMaintenanceRuleHandler(ruleService *maintenanceapp.MaintenanceRuleService) *MaintenanceRuleHandler {
	return &MaintenanceRuleHandler{ruleService: ruleService}
}

// Create schedules maintenance for a vehicle
func (h *MaintenanceRuleHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req maintenanceapp.CreateMaintenanceRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rule, err := h.ruleService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, rule)
}

// GetByID retrieves a rule by its ID
func (h *MaintenanceRuleHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid rule ID format")
		return
	}

	rule, err := h.ruleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rule)
}

// ListByVehicle returns all rules scheduled for a vehicle
func (h *MaintenanceRuleHandler) ListByVehicle(c *gin.Context) {
	vehicleID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	rules, err := h.ruleService.ListByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rules)
}

// Update reschedules a rule
func (h *MaintenanceRuleHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid rule ID format")
		return
	}

	var req maintenanceapp.UpdateMaintenanceRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rule, err := h.ruleService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rule)
}

// Delete removes a rule that has no recorded maintenance
func (h *MaintenanceRuleHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid rule ID format")
		return
	}

	if err := h.ruleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
