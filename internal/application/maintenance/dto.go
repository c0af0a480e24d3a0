package maintenance

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetcare/backend/internal/domain/maintenance"
)

// CreateMaintenanceTypeRequest represents a request to create a
// maintenance type
type CreateMaintenanceTypeRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateMaintenanceTypeRequest represents a request to update a
// maintenance type
type UpdateMaintenanceTypeRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

// ActorResponse identifies a user in responses
type ActorResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// MaintenanceTypeResponse represents a maintenance type view in API
// responses
type MaintenanceTypeResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedBy   ActorResponse `json:"created_by"`
	UpdatedBy   ActorResponse `json:"updated_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// SearchMaintenanceTypesRequest represents a catalog search
type SearchMaintenanceTypesRequest struct {
	Term  string `form:"term" binding:"required"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}

// SearchMaintenanceTypesResponse carries search hits and the hit count
// after the limit is applied
type SearchMaintenanceTypesResponse struct {
	Results    []MaintenanceTypeResponse `json:"results"`
	TotalFound int                       `json:"total_found"`
}

// CreateMaintenanceRuleRequest represents a request to schedule
// maintenance for a vehicle
type CreateMaintenanceRuleRequest struct {
	VehicleID         uuid.UUID `json:"vehicle_id" binding:"required"`
	MaintenanceTypeID uuid.UUID `json:"maintenance_type_id" binding:"required"`
	IntervalType      string    `json:"interval_type" binding:"required"`
	IntervalValue     int       `json:"interval_value" binding:"required,min=1"`
	YellowThreshold   int       `json:"yellow_threshold" binding:"min=0,max=100"`
	RedThreshold      int       `json:"red_threshold" binding:"min=0,max=100"`
}

// UpdateMaintenanceRuleRequest represents a request to reschedule
type UpdateMaintenanceRuleRequest struct {
	IntervalType    string `json:"interval_type" binding:"required"`
	IntervalValue   int    `json:"interval_value" binding:"required,min=1"`
	YellowThreshold int    `json:"yellow_threshold" binding:"min=0,max=100"`
	RedThreshold    int    `json:"red_threshold" binding:"min=0,max=100"`
}

// MaintenanceRuleResponse represents a rule in API responses
type MaintenanceRuleResponse struct {
	ID                  uuid.UUID  `json:"id"`
	VehicleID           uuid.UUID  `json:"vehicle_id"`
	MaintenanceTypeID   uuid.UUID  `json:"maintenance_type_id"`
	IntervalType        string     `json:"interval_type"`
	IntervalTypeDisplay string     `json:"interval_type_display"`
	IntervalValue       int        `json:"interval_value"`
	YellowThreshold     int        `json:"yellow_threshold"`
	RedThreshold        int        `json:"red_threshold"`
	CreatedBy           *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	Version             int        `json:"version"`
}

// CreateMaintenanceRecordRequest represents a request to log performed
// maintenance. ID is optional and accepted from originating systems.
type CreateMaintenanceRecordRequest struct {
	ID              *uuid.UUID `json:"id"`
	VehicleID       uuid.UUID  `json:"vehicle_id" binding:"required"`
	RuleID          uuid.UUID  `json:"rule_id" binding:"required"`
	VehicleStatusID *uuid.UUID `json:"vehicle_status_id"`
	PerformedAt     time.Time  `json:"performed_at" binding:"required"`
	Details         string     `json:"details" binding:"max=2000"`
}

// MaintenanceRecordResponse represents a record view in API responses
type MaintenanceRecordResponse struct {
	ID              uuid.UUID     `json:"id"`
	VehicleID       uuid.UUID     `json:"vehicle_id"`
	RuleID          uuid.UUID     `json:"rule_id"`
	TypeName        string        `json:"type_name"`
	PerformedBy     ActorResponse `json:"performed_by"`
	VehicleStatusID *uuid.UUID    `json:"vehicle_status_id,omitempty"`
	PerformedAt     time.Time     `json:"performed_at"`
	Details         string        `json:"details"`
	CreatedAt       time.Time     `json:"created_at"`
}

// ToMaintenanceTypeResponse converts a view to a response DTO
func ToMaintenanceTypeResponse(v *maintenance.MaintenanceTypeView) *MaintenanceTypeResponse {
	return &MaintenanceTypeResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		CreatedBy:   ActorResponse{ID: v.CreatedBy.ID, Email: v.CreatedBy.Email},
		UpdatedBy:   ActorResponse{ID: v.UpdatedBy.ID, Email: v.UpdatedBy.Email},
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// ToMaintenanceRuleResponse converts a rule aggregate to a response DTO
func ToMaintenanceRuleResponse(r *maintenance.MaintenanceRule) *MaintenanceRuleResponse {
	return &MaintenanceRuleResponse{
		ID:                  r.ID,
		VehicleID:           r.VehicleID,
		MaintenanceTypeID:   r.MaintenanceTypeID,
		IntervalType:        r.IntervalType.String(),
		IntervalTypeDisplay: r.IntervalType.DisplayName(),
		IntervalValue:       r.IntervalValue,
		YellowThreshold:     r.YellowThreshold,
		RedThreshold:        r.RedThreshold,
		CreatedBy:           r.GetCreatedBy(),
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		Version:             r.GetVersion(),
	}
}

// ToMaintenanceRecordResponse converts a record view to a response DTO
func ToMaintenanceRecordResponse(v *maintenance.MaintenanceRecordView) *MaintenanceRecordResponse {
	return &MaintenanceRecordResponse{
		ID:              v.ID,
		VehicleID:       v.VehicleID,
		RuleID:          v.RuleID,
		TypeName:        v.TypeName,
		PerformedBy:     ActorResponse{ID: v.PerformedBy.ID, Email: v.PerformedBy.Email},
		VehicleStatusID: v.VehicleStatusID,
		PerformedAt:     v.PerformedAt,
		Details:         v.Details,
		CreatedAt:       v.CreatedAt,
	}
}
