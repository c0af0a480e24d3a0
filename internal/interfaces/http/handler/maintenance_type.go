package handler

import (
	"github.com/gin-gonic/gin"

	maintenanceapp "github.com/fleetcare/backend/internal/application/maintenance"
)

// MaintenanceTypeHandler handles maintenance type catalog endpoints
type MaintenanceTypeHandler struct {
	BaseHandler
	typeService *maintenanceapp.MaintenanceTypeService
}

// NewMaintenanceTypeHandler creates a new MaintenanceTypeHandler
func NewMaintenanceTypeHandler(typeService *maintenanceapp.MaintenanceTypeService) *MaintenanceTypeHandler {
	return &MaintenanceTypeHandler{typeService: typeService}
}

// Create adds a new maintenance type to the catalog
func (h *MaintenanceTypeHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req maintenanceapp.CreateMaintenanceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	mt, err := h.typeService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, mt)
}

// GetByID retrieves a maintenance type by its ID
func (h *MaintenanceTypeHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid maintenance type ID format")
		return
	}

	mt, err := h.typeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, mt)
}

// List returns the whole catalog ordered by name
func (h *MaintenanceTypeHandler) List(c *gin.Context) {
	types, err := h.typeService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, types)
}

// Search performs a case-insensitive substring search over the catalog
func (h *MaintenanceTypeHandler) Search(c *gin.Context) {
	var req maintenanceapp.SearchMaintenanceTypesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.typeService.Search(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Update modifies a maintenance type
func (h *MaintenanceTypeHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid maintenance type ID format")
		return
	}

	var req maintenanceapp.UpdateMaintenanceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	mt, err := h.typeService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, mt)
}

// Delete removes a maintenance type that is not referenced by any rule
func (h *MaintenanceTypeHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid maintenance type ID format")
		return
	}

	if err := h.typeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
